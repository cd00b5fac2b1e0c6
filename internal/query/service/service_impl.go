package service

import (
	"context"
	"time"

	querydomain "github.com/metermint/metermint/internal/query/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) querydomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("query.service"),
	}
}

type userRow struct {
	ID            int64
	Username      string
	Email         string
	Company       *string
	Location      *string
	SocialProfile *string
	CreateTime    time.Time
}

var userColumns = map[string]func(*userRow) any{
	"id":             func(r *userRow) any { return r.ID },
	"username":       func(r *userRow) any { return r.Username },
	"email":          func(r *userRow) any { return r.Email },
	"company":        func(r *userRow) any { return r.Company },
	"location":       func(r *userRow) any { return r.Location },
	"social_profile": func(r *userRow) any { return r.SocialProfile },
	"create_time":    func(r *userRow) any { return r.CreateTime },
}

func (s *Service) UsersOfOrganization(ctx context.Context, orgID int64, columns []string) ([]querydomain.Row, error) {
	if len(columns) == 0 {
		columns = []string{"id", "username", "email"}
	}
	for _, col := range columns {
		if _, ok := userColumns[col]; !ok {
			return nil, querydomain.ErrInvalidColumn
		}
	}

	var rows []userRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT u.id, u.username, u.email, u.company, u.location, u.social_profile, u.create_time
		 FROM users u
		 JOIN memberships m ON m.user_id = u.id
		 WHERE m.org_id = ?
		 ORDER BY u.id`,
		orgID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]querydomain.Row, 0, len(rows))
	for i := range rows {
		row := make(querydomain.Row, len(columns))
		for _, col := range columns {
			row[col] = userColumns[col](&rows[i])
		}
		out = append(out, row)
	}
	return out, nil
}

type orgRow struct {
	ID          int64
	Name        string
	CountryCode string
	Currency    string
	CreateTime  time.Time
	Role        string
}

var orgColumns = map[string]func(*orgRow) any{
	"id":           func(r *orgRow) any { return r.ID },
	"name":         func(r *orgRow) any { return r.Name },
	"country_code": func(r *orgRow) any { return r.CountryCode },
	"currency":     func(r *orgRow) any { return r.Currency },
	"create_time":  func(r *orgRow) any { return r.CreateTime },
	"role":         func(r *orgRow) any { return r.Role },
}

func (s *Service) OrganizationsOfUser(ctx context.Context, userID int64, columns []string) ([]querydomain.Row, error) {
	if len(columns) == 0 {
		columns = []string{"id", "name", "role"}
	}
	for _, col := range columns {
		if _, ok := orgColumns[col]; !ok {
			return nil, querydomain.ErrInvalidColumn
		}
	}

	var rows []orgRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT o.id, o.name, o.country_code, o.currency, o.create_time, m.role
		 FROM organizations o
		 JOIN memberships m ON m.org_id = o.id
		 WHERE m.user_id = ?
		 ORDER BY o.id`,
		userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]querydomain.Row, 0, len(rows))
	for i := range rows {
		row := make(querydomain.Row, len(columns))
		for _, col := range columns {
			row[col] = orgColumns[col](&rows[i])
		}
		out = append(out, row)
	}
	return out, nil
}

type keyRow struct {
	ID         int64
	Name       *string
	Thumbnail  string
	CreateTime time.Time
	OrgID      int64
}

var keyColumns = map[string]func(*keyRow) any{
	"id":          func(r *keyRow) any { return r.ID },
	"name":        func(r *keyRow) any { return r.Name },
	"thumbnail":   func(r *keyRow) any { return r.Thumbnail },
	"create_time": func(r *keyRow) any { return r.CreateTime },
	"org_id":      func(r *keyRow) any { return r.OrgID },
}

func (s *Service) UserKeysInOrganizations(ctx context.Context, userID int64, orgIDs []int64, columns []string) (map[int64][]querydomain.Row, error) {
	if len(columns) == 0 {
		columns = []string{"id", "thumbnail", "create_time"}
	}
	for _, col := range columns {
		if _, ok := keyColumns[col]; !ok {
			return nil, querydomain.ErrInvalidColumn
		}
	}

	out := make(map[int64][]querydomain.Row, len(orgIDs))
	if len(orgIDs) == 0 {
		return out, nil
	}

	var rows []keyRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, name, thumbnail, create_time, org_id
		 FROM access_keys
		 WHERE user_id = ? AND org_id IN ? AND revoke_time IS NULL
		 ORDER BY create_time DESC`,
		userID,
		orgIDs,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		row := make(querydomain.Row, len(columns))
		for _, col := range columns {
			row[col] = keyColumns[col](&rows[i])
		}
		out[rows[i].OrgID] = append(out[rows[i].OrgID], row)
	}
	return out, nil
}

func (s *Service) UserProfile(ctx context.Context, userID int64) (querydomain.Row, error) {
	var row userRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, username, email, company, location, social_profile, create_time
		 FROM users WHERE id = ?`,
		userID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, querydomain.ErrNotFound
	}
	return querydomain.Row{"username": row.Username, "email": row.Email}, nil
}

func (s *Service) OrganizationIDByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.WithContext(ctx).Raw(
		`SELECT id FROM organizations WHERE name = ?`,
		name,
	).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, querydomain.ErrNotFound
	}
	return id, nil
}
