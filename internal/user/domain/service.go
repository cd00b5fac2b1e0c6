package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

type CreateRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Company       *string `json:"company"`
	Location      *string `json:"location"`
	SocialProfile *string `json:"social_profile"`
}

var (
	ErrInvalidUsername = errors.New("invalid_username")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrAlreadyExists   = errors.New("user_already_exists")
	ErrNotFound        = errors.New("user_not_found")
)
