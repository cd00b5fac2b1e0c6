// Package domain contains persistence models for the balance ledger.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Transaction is one unit of metered usage debited against an organization.
// Rows are append-only; they are never updated or deleted.
type Transaction struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID          int64        `gorm:"column:org_id;not null;index" json:"org_id"`
	UserID         int64        `gorm:"column:user_id;not null" json:"user_id"`
	PromptTokens   int64        `gorm:"column:prompt_tokens;not null" json:"prompt_tokens"`
	ResponseTokens int64        `gorm:"column:response_tokens;not null" json:"response_tokens"`
	Cost           float64      `gorm:"not null" json:"cost"`
	Currency       string       `gorm:"type:text;not null;default:'USD'" json:"currency"`
	CreateTime     time.Time    `gorm:"column:create_time;not null;index" json:"create_time"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "transactions" }

// Payment is a credit against an organization's balance. Append-only.
type Payment struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID      int64        `gorm:"column:org_id;not null;index" json:"org_id"`
	Amount     float64      `gorm:"not null" json:"amount"`
	Currency   string       `gorm:"type:text;not null;default:'USD'" json:"currency"`
	CreateTime time.Time    `gorm:"column:create_time;not null;index" json:"create_time"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

// Balance is an append-only checkpoint: the running balance plus the usage
// accumulated strictly since the previous checkpoint. The current balance of
// an organization is the row with the highest id.
type Balance struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID            int64        `gorm:"column:org_id;not null;index" json:"org_id"`
	Timestamp        time.Time    `gorm:"not null" json:"timestamp"`
	PromptTokenSum   int64        `gorm:"column:prompt_token_sum;not null" json:"prompt_token_sum"`
	ResponseTokenSum int64        `gorm:"column:response_token_sum;not null" json:"response_token_sum"`
	Balance          float64      `gorm:"not null" json:"balance"`
	Currency         string       `gorm:"type:text;not null;default:'USD'" json:"currency"`
}

// TableName sets the database table name.
func (Balance) TableName() string { return "balances" }
