package domain

import (
	"context"
	"errors"
)

// OrgBalance is the per-organization result of a calculate-balances run.
type OrgBalance struct {
	OrgID   int64   `json:"org_id"`
	Balance float64 `json:"balance"`
}

type Service interface {
	// AddTransactionsBatch persists the batch atomically: one malformed
	// record rejects the whole batch with zero rows written.
	AddTransactionsBatch(ctx context.Context, transactions []Transaction) error
	AddPayment(ctx context.Context, payment Payment) error
	// CalculateBalances folds activity since each organization's last
	// checkpoint into a new checkpoint row, all sharing a single snapshot
	// instant and a single commit. Nil or empty orgIDs means every
	// organization in the store.
	CalculateBalances(ctx context.Context, orgIDs []int64) ([]OrgBalance, error)
}

var (
	ErrEmptyBatch         = errors.New("empty_batch")
	ErrInvalidTransaction = errors.New("invalid_transaction")
	ErrInvalidPayment     = errors.New("invalid_payment")
)
