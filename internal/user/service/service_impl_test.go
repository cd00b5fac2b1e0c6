package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/metermint/metermint/internal/clock"
	"github.com/metermint/metermint/internal/idgen"
	userdomain "github.com/metermint/metermint/internal/user/domain"
	userrepository "github.com/metermint/metermint/internal/user/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) (userdomain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.Exec(`CREATE TABLE users (
		id BIGINT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		company TEXT,
		location TEXT,
		social_profile TEXT,
		create_time DATETIME NOT NULL
	)`).Error; err != nil {
		t.Fatalf("create users: %v", err)
	}

	service := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		IDs:   idgen.New(),
		Clock: clock.NewFakeClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  userrepository.Provide(),
	})

	return service, db
}

func TestCreateUser(t *testing.T) {
	service, _ := setupUserService(t)
	ctx := context.Background()

	company := "Initech"
	u, err := service.Create(ctx, userdomain.CreateRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Company:  &company,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID < 10_000_000_000 || u.ID > 99_999_999_999 {
		t.Fatalf("user id %d outside the account id space", u.ID)
	}

	got, err := service.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", got)
	}
	if got.Company == nil || *got.Company != "Initech" {
		t.Fatalf("expected company Initech, got %v", got.Company)
	}
}

func TestCreateUserValidation(t *testing.T) {
	service, _ := setupUserService(t)
	ctx := context.Background()

	if _, err := service.Create(ctx, userdomain.CreateRequest{Username: "-bad", Email: "a@b.co"}); err != userdomain.ErrInvalidUsername {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
	if _, err := service.Create(ctx, userdomain.CreateRequest{Username: "alice", Email: "not-an-email"}); err != userdomain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestCreateUserDuplicates(t *testing.T) {
	service, _ := setupUserService(t)
	ctx := context.Background()

	if _, err := service.Create(ctx, userdomain.CreateRequest{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := service.Create(ctx, userdomain.CreateRequest{Username: "alice", Email: "other@example.com"}); err != userdomain.ErrAlreadyExists {
		t.Fatalf("duplicate username: expected ErrAlreadyExists, got %v", err)
	}
	if _, err := service.Create(ctx, userdomain.CreateRequest{Username: "bob", Email: "alice@example.com"}); err != userdomain.ErrAlreadyExists {
		t.Fatalf("duplicate email: expected ErrAlreadyExists, got %v", err)
	}
}

func TestGetUnknownUser(t *testing.T) {
	service, _ := setupUserService(t)

	if _, err := service.GetByID(context.Background(), 10000000001); err != userdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
