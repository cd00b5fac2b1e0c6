package service

import (
	"context"
	"strings"

	"github.com/metermint/metermint/internal/clock"
	"github.com/metermint/metermint/internal/idgen"
	userdomain "github.com/metermint/metermint/internal/user/domain"
	"github.com/metermint/metermint/internal/validate"
	"github.com/metermint/metermint/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	IDs   *idgen.Generator
	Clock clock.Clock
	Repo  userdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	ids   *idgen.Generator
	clock clock.Clock
	repo  userdomain.Repository
}

func New(p Params) userdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("user.service"),
		ids:   p.IDs,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req userdomain.CreateRequest) (*userdomain.User, error) {
	username := strings.TrimSpace(req.Username)
	if !validate.AccountName(username) {
		return nil, userdomain.ErrInvalidUsername
	}
	email := strings.TrimSpace(req.Email)
	if !validate.Email(email) {
		return nil, userdomain.ErrInvalidEmail
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	user := &userdomain.User{
		Username:      username,
		Email:         email,
		Company:       req.Company,
		Location:      req.Location,
		SocialProfile: req.SocialProfile,
		CreateTime:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.ids.Assign(ctx, tx, "users")
		if err != nil {
			return err
		}
		user.ID = id
		return s.repo.Insert(ctx, tx, user)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, userdomain.ErrAlreadyExists
		}
		return nil, err
	}

	s.log.Info("user created", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*userdomain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userdomain.ErrNotFound
	}
	return user, nil
}
