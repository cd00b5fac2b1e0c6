package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	keydomain "github.com/metermint/metermint/internal/accesskey/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() keydomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, key *keydomain.AccessKey) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO access_keys (id, name, key_hash, thumbnail, create_time, revoke_time, user_id, org_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		key.ID,
		key.Name,
		key.KeyHash,
		key.Thumbnail,
		key.CreateTime,
		key.RevokeTime,
		key.UserID,
		key.OrgID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*keydomain.AccessKey, error) {
	var key keydomain.AccessKey
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, key_hash, thumbnail, create_time, revoke_time, user_id, org_id
		 FROM access_keys WHERE id = ?`,
		id,
	).Scan(&key).Error
	if err != nil {
		return nil, err
	}
	if key.ID == 0 {
		return nil, nil
	}
	return &key, nil
}

func (r *repo) SetRevokeTime(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE access_keys SET revoke_time = ? WHERE id = ? AND revoke_time IS NULL`,
		at,
		id,
	).Error
}

func (r *repo) ListValid(ctx context.Context, db *gorm.DB, orgID int64) ([]keydomain.AccessKey, error) {
	var keys []keydomain.AccessKey
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, key_hash, thumbnail, create_time, revoke_time, user_id, org_id
		 FROM access_keys
		 WHERE org_id = ? AND revoke_time IS NULL
		 ORDER BY create_time DESC`,
		orgID,
	).Scan(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *repo) RevokedHashesInRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]string, error) {
	var hashes []string
	err := db.WithContext(ctx).Raw(
		`SELECT key_hash FROM access_keys
		 WHERE revoke_time >= ? AND revoke_time < ?
		 ORDER BY revoke_time ASC`,
		start,
		end,
	).Scan(&hashes).Error
	if err != nil {
		return nil, err
	}
	return hashes, nil
}
