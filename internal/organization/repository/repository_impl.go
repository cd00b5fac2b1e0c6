package repository

import (
	"context"

	orgdomain "github.com/metermint/metermint/internal/organization/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() orgdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, org *orgdomain.Organization) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO organizations (id, name, country_code, currency, metadata, create_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		org.ID,
		org.Name,
		org.CountryCode,
		org.Currency,
		org.Metadata,
		org.CreateTime,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*orgdomain.Organization, error) {
	var org orgdomain.Organization
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, country_code, currency, metadata, create_time
		 FROM organizations WHERE id = ?`,
		id,
	).Scan(&org).Error
	if err != nil {
		return nil, err
	}
	if org.ID == 0 {
		return nil, nil
	}
	return &org, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*orgdomain.Organization, error) {
	var org orgdomain.Organization
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, country_code, currency, metadata, create_time
		 FROM organizations WHERE name = ?`,
		name,
	).Scan(&org).Error
	if err != nil {
		return nil, err
	}
	if org.ID == 0 {
		return nil, nil
	}
	return &org, nil
}

func (r *repo) UserExists(ctx context.Context, db *gorm.DB, userID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM users WHERE id = ?`,
		userID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) InsertMember(ctx context.Context, db *gorm.DB, m *orgdomain.Membership) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO memberships (id, org_id, user_id, role, create_time)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID,
		m.OrgID,
		m.UserID,
		m.Role,
		m.CreateTime,
	).Error
}

func (r *repo) FindMember(ctx context.Context, db *gorm.DB, orgID, userID int64) (*orgdomain.Membership, error) {
	var m orgdomain.Membership
	err := db.WithContext(ctx).Raw(
		`SELECT id, org_id, user_id, role, create_time
		 FROM memberships WHERE org_id = ? AND user_id = ?`,
		orgID,
		userID,
	).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) UpdateMemberRole(ctx context.Context, db *gorm.DB, orgID, userID int64, role string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE memberships SET role = ? WHERE org_id = ? AND user_id = ?`,
		role,
		orgID,
		userID,
	).Error
}
