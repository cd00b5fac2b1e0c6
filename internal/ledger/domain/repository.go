package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrgRef is the slice of an organization the ledger needs.
type OrgRef struct {
	ID       int64
	Currency string
}

// WindowTotals aggregates transaction activity inside a checkpoint window.
type WindowTotals struct {
	PromptTokens   int64
	ResponseTokens int64
	Cost           float64
}

type Repository interface {
	InsertTransactions(ctx context.Context, db *gorm.DB, transactions []Transaction) error
	InsertPayment(ctx context.Context, db *gorm.DB, payment *Payment) error
	// ListOrganizations resolves ids to known organizations; nil ids means all.
	ListOrganizations(ctx context.Context, db *gorm.DB, ids []int64) ([]OrgRef, error)
	// LatestBalance returns the checkpoint with the highest id for the
	// organization, or nil when none exists.
	LatestBalance(ctx context.Context, db *gorm.DB, orgID int64) (*Balance, error)
	// UsageTotals sums transactions with create_time in (since, until];
	// a nil since leaves the window unbounded below.
	UsageTotals(ctx context.Context, db *gorm.DB, orgID int64, since *time.Time, until time.Time) (WindowTotals, error)
	// PaymentTotal sums payment amounts over the same window discipline.
	PaymentTotal(ctx context.Context, db *gorm.DB, orgID int64, since *time.Time, until time.Time) (float64, error)
	InsertBalance(ctx context.Context, db *gorm.DB, balance *Balance) error
}
