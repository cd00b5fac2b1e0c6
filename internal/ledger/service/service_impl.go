package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metermint/metermint/internal/clock"
	ledgerdomain "github.com/metermint/metermint/internal/ledger/domain"
	obsmetrics "github.com/metermint/metermint/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCurrency = "USD"

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       ledgerdomain.Repository
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       ledgerdomain.Repository
	obsMetrics *obsmetrics.Metrics
}

func NewService(p Params) ledgerdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("ledger.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		obsMetrics: p.ObsMetrics,
	}
}

func (s *Service) AddTransactionsBatch(ctx context.Context, transactions []ledgerdomain.Transaction) error {
	if len(transactions) == 0 {
		return ledgerdomain.ErrEmptyBatch
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return err
	}

	for i := range transactions {
		t := &transactions[i]
		if t.OrgID <= 0 || t.UserID <= 0 {
			return ledgerdomain.ErrInvalidTransaction
		}
		if t.PromptTokens < 0 || t.ResponseTokens < 0 || t.Cost < 0 {
			return ledgerdomain.ErrInvalidTransaction
		}
		if t.ID == 0 {
			t.ID = s.genID.Generate()
		}
		if t.Currency == "" {
			t.Currency = defaultCurrency
		}
		if t.CreateTime.IsZero() {
			t.CreateTime = now
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.InsertTransactions(ctx, tx, transactions)
	})
	if err != nil {
		return err
	}

	if s.obsMetrics != nil {
		s.obsMetrics.TransactionsIngested.Add(float64(len(transactions)))
	}
	s.log.Info("transactions batch added", zap.Int("count", len(transactions)))
	return nil
}

func (s *Service) AddPayment(ctx context.Context, payment ledgerdomain.Payment) error {
	if payment.OrgID <= 0 || payment.Amount < 0 {
		return ledgerdomain.ErrInvalidPayment
	}

	if payment.ID == 0 {
		payment.ID = s.genID.Generate()
	}
	if payment.Currency == "" {
		payment.Currency = defaultCurrency
	}
	if payment.CreateTime.IsZero() {
		now, err := s.clock.Now(ctx)
		if err != nil {
			return err
		}
		payment.CreateTime = now
	}

	if err := s.repo.InsertPayment(ctx, s.db, &payment); err != nil {
		return err
	}

	if s.obsMetrics != nil {
		s.obsMetrics.PaymentsRecorded.Inc()
	}
	s.log.Info("payment recorded",
		zap.Int64("org_id", payment.OrgID),
		zap.Float64("amount", payment.Amount),
	)
	return nil
}

func (s *Service) CalculateBalances(ctx context.Context, orgIDs []int64) ([]ledgerdomain.OrgBalance, error) {
	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}
	// One snapshot instant shared by every organization in this run, held a
	// second short of "now" so in-flight same-second writes land in the next
	// window instead of straddling this one.
	snapshotAt := now.Truncate(time.Second).Add(-time.Second)

	var results []ledgerdomain.OrgBalance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgs, err := s.repo.ListOrganizations(ctx, tx, orgIDs)
		if err != nil {
			return err
		}

		results = make([]ledgerdomain.OrgBalance, 0, len(orgs))
		for _, org := range orgs {
			last, err := s.repo.LatestBalance(ctx, tx, org.ID)
			if err != nil {
				return err
			}

			var since *time.Time
			lastBalance := 0.0
			if last != nil {
				since = &last.Timestamp
				lastBalance = last.Balance
			}

			totals, err := s.repo.UsageTotals(ctx, tx, org.ID, since, snapshotAt)
			if err != nil {
				return err
			}
			payments, err := s.repo.PaymentTotal(ctx, tx, org.ID, since, snapshotAt)
			if err != nil {
				return err
			}

			newBalance := lastBalance - totals.Cost + payments

			checkpoint := &ledgerdomain.Balance{
				ID:               s.genID.Generate(),
				OrgID:            org.ID,
				Timestamp:        snapshotAt,
				PromptTokenSum:   totals.PromptTokens,
				ResponseTokenSum: totals.ResponseTokens,
				Balance:          newBalance,
				Currency:         org.Currency,
			}
			if err := s.repo.InsertBalance(ctx, tx, checkpoint); err != nil {
				return err
			}

			results = append(results, ledgerdomain.OrgBalance{OrgID: org.ID, Balance: newBalance})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.obsMetrics != nil {
		s.obsMetrics.BalanceRuns.Inc()
		s.obsMetrics.BalanceCheckpoints.Add(float64(len(results)))
	}
	s.log.Info("balances calculated",
		zap.Int("organizations", len(results)),
		zap.Time("snapshot_at", snapshotAt),
	)
	return results, nil
}
