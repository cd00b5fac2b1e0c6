// Package domain contains persistence models for the organization service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Organization represents a tenant.
type Organization struct {
	ID          int64             `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"type:text;not null;uniqueIndex:ux_organizations_name" json:"name"`
	CountryCode string            `gorm:"column:country_code" json:"country_code"`
	Currency    string            `gorm:"type:text;not null;default:'USD'" json:"currency"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
	CreateTime  time.Time         `gorm:"column:create_time;not null" json:"create_time"`
}

// TableName sets the database table name.
func (Organization) TableName() string { return "organizations" }

// Membership associates a user with an organization under a role.
type Membership struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OrgID      int64        `gorm:"column:org_id;not null;uniqueIndex:ux_membership_org_user,priority:1" json:"org_id"`
	UserID     int64        `gorm:"column:user_id;not null;uniqueIndex:ux_membership_org_user,priority:2" json:"user_id"`
	Role       string       `gorm:"type:text;not null" json:"role"`
	CreateTime time.Time    `gorm:"column:create_time;not null" json:"create_time"`
}

// TableName sets the database table name.
func (Membership) TableName() string { return "memberships" }
