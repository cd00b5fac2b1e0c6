// Package domain defines the read-side projection contracts used by the HTTP
// layer and provisioning scripts.
package domain

import (
	"context"
	"errors"
)

// Row is an ordered-by-request projection of an entity: keys follow the
// requested column list.
type Row = map[string]any

type Service interface {
	// UsersOfOrganization returns member users projected onto columns
	// (default id, username, email). No match yields an empty slice.
	UsersOfOrganization(ctx context.Context, orgID int64, columns []string) ([]Row, error)
	// OrganizationsOfUser returns the user's organizations with the
	// membership role available as the "role" column (default id, name, role).
	OrganizationsOfUser(ctx context.Context, userID int64, columns []string) ([]Row, error)
	// UserKeysInOrganizations returns the user's non-revoked keys grouped by
	// organization (default columns id, thumbnail, create_time).
	UserKeysInOrganizations(ctx context.Context, userID int64, orgIDs []int64, columns []string) (map[int64][]Row, error)
	UserProfile(ctx context.Context, userID int64) (Row, error)
	OrganizationIDByName(ctx context.Context, name string) (int64, error)
}

var (
	ErrInvalidColumn = errors.New("invalid_column")
	ErrNotFound      = errors.New("not_found")
)
