package domain

import (
	"context"
	"errors"
)

const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"
)

// ValidRole reports whether role is one of the membership roles.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleMember
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Organization, error)
	GetByID(ctx context.Context, id int64) (*Organization, error)
	AddMember(ctx context.Context, orgID, userID int64, role string) error
	UpdateMemberRole(ctx context.Context, orgID, userID int64, role string) error
}

type CreateRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Currency    string `json:"currency"`
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrAlreadyExists  = errors.New("organization_already_exists")
	ErrNotFound       = errors.New("organization_not_found")
	ErrUserNotFound   = errors.New("user_not_found")
	ErrAlreadyMember  = errors.New("already_member")
	ErrMemberNotFound = errors.New("member_not_found")
	ErrInvalidRole    = errors.New("invalid_role")
)
