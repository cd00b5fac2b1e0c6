package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	keydomain "github.com/metermint/metermint/internal/accesskey/domain"
	"github.com/metermint/metermint/internal/clock"
	"github.com/metermint/metermint/internal/keycodec"
	obsmetrics "github.com/metermint/metermint/internal/observability/metrics"
	orgdomain "github.com/metermint/metermint/internal/organization/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Codec      *keycodec.Codec
	Repo       keydomain.Repository
	OrgRepo    orgdomain.Repository
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	codec      *keycodec.Codec
	repo       keydomain.Repository
	orgRepo    orgdomain.Repository
	obsMetrics *obsmetrics.Metrics
}

func New(p Params) keydomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("accesskey.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		codec:      p.Codec,
		repo:       p.Repo,
		orgRepo:    p.OrgRepo,
		obsMetrics: p.ObsMetrics,
	}
}

func (s *Service) Issue(ctx context.Context, userID, orgID int64, name *string) (*keydomain.AccessKey, string, error) {
	if orgID <= 0 {
		return nil, "", keydomain.ErrInvalidOrganization
	}
	if userID <= 0 {
		return nil, "", keydomain.ErrInvalidUser
	}

	secret, err := s.codec.Generate(orgID)
	if err != nil {
		return nil, "", err
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, "", err
	}

	key := &keydomain.AccessKey{
		ID:         s.genID.Generate(),
		Name:       name,
		KeyHash:    keycodec.Hash(secret),
		Thumbnail:  keycodec.Thumbnail(secret),
		CreateTime: now,
		UserID:     userID,
		OrgID:      orgID,
	}

	// Membership check and insert share one transaction so a concurrent
	// membership removal cannot slip between them.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member, err := s.orgRepo.FindMember(ctx, tx, orgID, userID)
		if err != nil {
			return err
		}
		if member == nil {
			return keydomain.ErrNotMember
		}
		return s.repo.Insert(ctx, tx, key)
	})
	if err != nil {
		return nil, "", err
	}

	if s.obsMetrics != nil {
		s.obsMetrics.KeysIssued.Inc()
	}
	s.log.Info("access key issued",
		zap.String("key_id", key.ID.String()),
		zap.String("key_hash", key.KeyHash),
		zap.Int64("org_id", orgID),
	)
	return key, secret, nil
}

func (s *Service) Revoke(ctx context.Context, keyID snowflake.ID) error {
	now, err := s.clock.Now(ctx)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key, err := s.repo.FindByID(ctx, tx, keyID)
		if err != nil {
			return err
		}
		if key == nil {
			return keydomain.ErrNotFound
		}
		if key.Revoked() {
			return keydomain.ErrAlreadyRevoked
		}
		return s.repo.SetRevokeTime(ctx, tx, keyID, now)
	})
	if err != nil {
		return err
	}

	if s.obsMetrics != nil {
		s.obsMetrics.KeysRevoked.Inc()
	}
	s.log.Info("access key revoked", zap.String("key_id", keyID.String()))
	return nil
}

func (s *Service) ListValid(ctx context.Context, orgID int64) ([]keydomain.AccessKey, error) {
	if orgID <= 0 {
		return nil, keydomain.ErrInvalidOrganization
	}
	return s.repo.ListValid(ctx, s.db, orgID)
}

func (s *Service) RevokedHashesInRange(ctx context.Context, start, end time.Time) ([]string, error) {
	return s.repo.RevokedHashesInRange(ctx, s.db, start, end)
}
