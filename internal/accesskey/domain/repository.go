package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, key *AccessKey) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*AccessKey, error)
	SetRevokeTime(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error
	ListValid(ctx context.Context, db *gorm.DB, orgID int64) ([]AccessKey, error)
	RevokedHashesInRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]string, error)
}
