package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// Issue creates a key for a member of the organization and returns the
	// persisted record together with the secret. The secret is observable
	// only in this return value, never again.
	Issue(ctx context.Context, userID, orgID int64, name *string) (*AccessKey, string, error)
	Revoke(ctx context.Context, keyID snowflake.ID) error
	ListValid(ctx context.Context, orgID int64) ([]AccessKey, error)
	// RevokedHashesInRange returns hashes of keys with
	// start <= revoke_time < end. Adjacent windows neither overlap nor gap,
	// so periodic sweeps see every revocation exactly once.
	RevokedHashesInRange(ctx context.Context, start, end time.Time) ([]string, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidUser         = errors.New("invalid_user")
	ErrNotMember           = errors.New("not_a_member")
	ErrNotFound            = errors.New("access_key_not_found")
	ErrAlreadyRevoked      = errors.New("access_key_already_revoked")
)
