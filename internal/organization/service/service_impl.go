package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/metermint/metermint/internal/clock"
	"github.com/metermint/metermint/internal/idgen"
	orgdomain "github.com/metermint/metermint/internal/organization/domain"
	"github.com/metermint/metermint/internal/validate"
	"github.com/metermint/metermint/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCurrency = "USD"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	IDs   *idgen.Generator
	Clock clock.Clock
	Repo  orgdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	ids   *idgen.Generator
	clock clock.Clock
	repo  orgdomain.Repository
}

func New(p Params) orgdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("organization.service"),
		genID: p.GenID,
		ids:   p.IDs,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req orgdomain.CreateRequest) (*orgdomain.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if !validate.AccountName(name) {
		return nil, orgdomain.ErrInvalidName
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	org := &orgdomain.Organization{
		Name:        name,
		CountryCode: strings.TrimSpace(req.CountryCode),
		Currency:    currency,
		CreateTime:  now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.ids.Assign(ctx, tx, "organizations")
		if err != nil {
			return err
		}
		org.ID = id
		return s.repo.Insert(ctx, tx, org)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, orgdomain.ErrAlreadyExists
		}
		return nil, err
	}

	s.log.Info("organization created", zap.Int64("org_id", org.ID))
	return org, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*orgdomain.Organization, error) {
	org, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, orgdomain.ErrNotFound
	}
	return org, nil
}

func (s *Service) AddMember(ctx context.Context, orgID, userID int64, role string) error {
	if role == "" {
		role = orgdomain.RoleMember
	}
	if !orgdomain.ValidRole(role) {
		return orgdomain.ErrInvalidRole
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		org, err := s.repo.FindByID(ctx, tx, orgID)
		if err != nil {
			return err
		}
		if org == nil {
			return orgdomain.ErrNotFound
		}

		exists, err := s.repo.UserExists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return orgdomain.ErrUserNotFound
		}

		return s.repo.InsertMember(ctx, tx, &orgdomain.Membership{
			ID:         s.genID.Generate(),
			OrgID:      orgID,
			UserID:     userID,
			Role:       role,
			CreateTime: now,
		})
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return orgdomain.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (s *Service) UpdateMemberRole(ctx context.Context, orgID, userID int64, role string) error {
	if !orgdomain.ValidRole(role) {
		return orgdomain.ErrInvalidRole
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.repo.FindMember(ctx, tx, orgID, userID)
		if err != nil {
			return err
		}
		if m == nil {
			return orgdomain.ErrMemberNotFound
		}
		return s.repo.UpdateMemberRole(ctx, tx, orgID, userID, role)
	})
}
