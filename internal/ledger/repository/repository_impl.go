package repository

import (
	"context"
	"time"

	ledgerdomain "github.com/metermint/metermint/internal/ledger/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ledgerdomain.Repository {
	return &repo{}
}

func (r *repo) InsertTransactions(ctx context.Context, db *gorm.DB, transactions []ledgerdomain.Transaction) error {
	for i := range transactions {
		t := &transactions[i]
		err := db.WithContext(ctx).Exec(
			`INSERT INTO transactions (id, org_id, user_id, prompt_tokens, response_tokens, cost, currency, create_time)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID,
			t.OrgID,
			t.UserID,
			t.PromptTokens,
			t.ResponseTokens,
			t.Cost,
			t.Currency,
			t.CreateTime,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) InsertPayment(ctx context.Context, db *gorm.DB, payment *ledgerdomain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, org_id, amount, currency, create_time)
		 VALUES (?, ?, ?, ?, ?)`,
		payment.ID,
		payment.OrgID,
		payment.Amount,
		payment.Currency,
		payment.CreateTime,
	).Error
}

func (r *repo) ListOrganizations(ctx context.Context, db *gorm.DB, ids []int64) ([]ledgerdomain.OrgRef, error) {
	var orgs []ledgerdomain.OrgRef
	query := db.WithContext(ctx)
	var err error
	if len(ids) == 0 {
		err = query.Raw(`SELECT id, currency FROM organizations ORDER BY id`).Scan(&orgs).Error
	} else {
		err = query.Raw(`SELECT id, currency FROM organizations WHERE id IN ? ORDER BY id`, ids).Scan(&orgs).Error
	}
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *repo) LatestBalance(ctx context.Context, db *gorm.DB, orgID int64) (*ledgerdomain.Balance, error) {
	var balance ledgerdomain.Balance
	err := db.WithContext(ctx).Raw(
		`SELECT id, org_id, timestamp, prompt_token_sum, response_token_sum, balance, currency
		 FROM balances
		 WHERE org_id = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		orgID,
	).Scan(&balance).Error
	if err != nil {
		return nil, err
	}
	if balance.ID == 0 {
		return nil, nil
	}
	return &balance, nil
}

func (r *repo) UsageTotals(ctx context.Context, db *gorm.DB, orgID int64, since *time.Time, until time.Time) (ledgerdomain.WindowTotals, error) {
	var totals ledgerdomain.WindowTotals
	var err error
	if since == nil {
		err = db.WithContext(ctx).Raw(
			`SELECT COALESCE(SUM(prompt_tokens), 0) AS prompt_tokens,
			        COALESCE(SUM(response_tokens), 0) AS response_tokens,
			        COALESCE(SUM(cost), 0) AS cost
			 FROM transactions
			 WHERE org_id = ? AND create_time <= ?`,
			orgID,
			until,
		).Scan(&totals).Error
	} else {
		err = db.WithContext(ctx).Raw(
			`SELECT COALESCE(SUM(prompt_tokens), 0) AS prompt_tokens,
			        COALESCE(SUM(response_tokens), 0) AS response_tokens,
			        COALESCE(SUM(cost), 0) AS cost
			 FROM transactions
			 WHERE org_id = ? AND create_time > ? AND create_time <= ?`,
			orgID,
			*since,
			until,
		).Scan(&totals).Error
	}
	if err != nil {
		return ledgerdomain.WindowTotals{}, err
	}
	return totals, nil
}

func (r *repo) PaymentTotal(ctx context.Context, db *gorm.DB, orgID int64, since *time.Time, until time.Time) (float64, error) {
	var total float64
	var err error
	if since == nil {
		err = db.WithContext(ctx).Raw(
			`SELECT COALESCE(SUM(amount), 0) FROM payments
			 WHERE org_id = ? AND create_time <= ?`,
			orgID,
			until,
		).Scan(&total).Error
	} else {
		err = db.WithContext(ctx).Raw(
			`SELECT COALESCE(SUM(amount), 0) FROM payments
			 WHERE org_id = ? AND create_time > ? AND create_time <= ?`,
			orgID,
			*since,
			until,
		).Scan(&total).Error
	}
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repo) InsertBalance(ctx context.Context, db *gorm.DB, balance *ledgerdomain.Balance) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO balances (id, org_id, timestamp, prompt_token_sum, response_token_sum, balance, currency)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		balance.ID,
		balance.OrgID,
		balance.Timestamp,
		balance.PromptTokenSum,
		balance.ResponseTokenSum,
		balance.Balance,
		balance.Currency,
	).Error
}
