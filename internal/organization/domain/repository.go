package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, org *Organization) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Organization, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Organization, error)
	UserExists(ctx context.Context, db *gorm.DB, userID int64) (bool, error)
	InsertMember(ctx context.Context, db *gorm.DB, m *Membership) error
	FindMember(ctx context.Context, db *gorm.DB, orgID, userID int64) (*Membership, error)
	UpdateMemberRole(ctx context.Context, db *gorm.DB, orgID, userID int64, role string) error
}
