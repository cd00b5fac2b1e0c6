package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/metermint/metermint/internal/ledger/domain"
)

type ingestTransactionsRequest struct {
	Transactions []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	OrgID          int64   `json:"org_id"`
	UserID         int64   `json:"user_id"`
	PromptTokens   int64   `json:"prompt_tokens"`
	ResponseTokens int64   `json:"response_tokens"`
	Cost           float64 `json:"cost"`
	Currency       string  `json:"currency"`
}

func (s *Server) IngestTransactions(c *gin.Context) {
	var req ingestTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	batch := make([]ledgerdomain.Transaction, 0, len(req.Transactions))
	for _, r := range req.Transactions {
		batch = append(batch, ledgerdomain.Transaction{
			OrgID:          r.OrgID,
			UserID:         r.UserID,
			PromptTokens:   r.PromptTokens,
			ResponseTokens: r.ResponseTokens,
			Cost:           r.Cost,
			Currency:       r.Currency,
		})
	}

	if err := s.ledgerSvc.AddTransactionsBatch(c.Request.Context(), batch); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ingested": len(batch)})
}

type recordPaymentRequest struct {
	OrgID    int64   `json:"org_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (s *Server) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.ledgerSvc.AddPayment(c.Request.Context(), ledgerdomain.Payment{
		OrgID:    req.OrgID,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recorded": true})
}

type calculateBalancesRequest struct {
	OrgIDs []int64 `json:"org_ids"`
}

func (s *Server) CalculateBalances(c *gin.Context) {
	var req calculateBalancesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
	}

	balances, err := s.ledgerSvc.CalculateBalances(c.Request.Context(), req.OrgIDs)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": balances})
}
