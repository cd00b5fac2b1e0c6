// Package domain contains persistence models for access keys.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AccessKey stores the hashed credential scoped to a (user, organization)
// pair. The secret itself is never persisted; the thumbnail lets a user tell
// keys apart without re-seeing it. Rows are immutable except for RevokeTime,
// which is set once and never cleared.
type AccessKey struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Name       *string      `gorm:"type:text" json:"name"`
	KeyHash    string       `gorm:"column:key_hash;type:text;not null;uniqueIndex:ux_access_keys_hash" json:"-"`
	Thumbnail  string       `gorm:"type:text;not null" json:"thumbnail"`
	CreateTime time.Time    `gorm:"column:create_time;not null" json:"create_time"`
	RevokeTime *time.Time   `gorm:"column:revoke_time;index" json:"revoke_time"`
	UserID     int64        `gorm:"column:user_id;not null;index" json:"user_id"`
	OrgID      int64        `gorm:"column:org_id;not null;index" json:"org_id"`
}

// TableName sets the database table name.
func (AccessKey) TableName() string { return "access_keys" }

// Revoked reports whether the key has been revoked.
func (k *AccessKey) Revoked() bool { return k.RevokeTime != nil }
