// Package domain contains persistence models for the user service.
package domain

import "time"

// User is an account holder; organization membership lives in the
// organization package.
type User struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"type:text;not null;uniqueIndex:ux_users_username" json:"username"`
	Email         string    `gorm:"type:text;not null;uniqueIndex:ux_users_email" json:"email"`
	Company       *string   `gorm:"type:text" json:"company"`
	Location      *string   `gorm:"type:text" json:"location"`
	SocialProfile *string   `gorm:"column:social_profile;type:text" json:"social_profile"`
	CreateTime    time.Time `gorm:"column:create_time;not null" json:"create_time"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
