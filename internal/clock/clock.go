// Package clock provides the time source used for persisted timestamps.
// Snapshot instants always come from the database server, never from
// caller-supplied wall-clock time.
package clock

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Clock interface {
	Now(ctx context.Context) (time.Time, error)
}

type dbClock struct {
	db *gorm.DB
}

// NewDBClock returns a Clock backed by the database server's clock.
func NewDBClock(db *gorm.DB) Clock {
	return &dbClock{db: db}
}

func (c *dbClock) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := c.db.WithContext(ctx).Raw(`SELECT CURRENT_TIMESTAMP`).Scan(&now).Error; err != nil {
		return time.Time{}, err
	}
	return now.UTC(), nil
}
