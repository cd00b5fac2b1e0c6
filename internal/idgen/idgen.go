// Package idgen assigns account identifiers by random draw instead of a
// sequence, so ids expose neither creation order nor row counts.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"gorm.io/gorm"
)

const (
	// 11-digit id space keeps collision odds negligible at realistic volumes.
	idMin = 10_000_000_000
	idMax = 99_999_999_999

	defaultMaxAttempts = 16
)

var ErrExhausted = errors.New("id_space_exhausted")

type Generator struct {
	intn        func(int64) int64
	maxAttempts int
}

func New() *Generator {
	return &Generator{
		intn:        rand.Int64N,
		maxAttempts: defaultMaxAttempts,
	}
}

// Candidate draws a random id from the account id space.
func (g *Generator) Candidate() int64 {
	return idMin + g.intn(idMax-idMin+1)
}

// Assign draws candidates until one is free in the given table, probing at
// most maxAttempts times. Callers run it inside the transaction that inserts
// the row, so the uniqueness constraint backstops any remaining race.
func (g *Generator) Assign(ctx context.Context, db *gorm.DB, table string) (int64, error) {
	for i := 0; i < g.maxAttempts; i++ {
		id := g.Candidate()
		var count int64
		err := db.WithContext(ctx).Raw(
			fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE id = ?`, table),
			id,
		).Scan(&count).Error
		if err != nil {
			return 0, err
		}
		if count == 0 {
			return id, nil
		}
	}
	return 0, ErrExhausted
}
