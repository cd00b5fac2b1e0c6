package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	querydomain "github.com/metermint/metermint/internal/query/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	orgA  = int64(10000000001)
	orgB  = int64(10000000002)
	alice = int64(10000000011)
	bob   = int64(10000000012)
)

func setupQueryService(t *testing.T) (querydomain.Service, *gorm.DB) {
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
	prepareQuerySchema(t, db)

	service := New(Params{DB: db, Log: zap.NewNop()})
	return service, db
}

func prepareQuerySchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	stmts := []string{
		`CREATE TABLE organizations (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			country_code TEXT,
			currency TEXT NOT NULL DEFAULT 'USD',
			metadata JSON,
			create_time DATETIME NOT NULL
		)`,
		`CREATE TABLE users (
			id BIGINT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			company TEXT,
			location TEXT,
			social_profile TEXT,
			create_time DATETIME NOT NULL
		)`,
		`CREATE TABLE memberships (
			id BIGINT PRIMARY KEY,
			org_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			role TEXT NOT NULL DEFAULT 'MEMBER',
			create_time DATETIME NOT NULL,
			UNIQUE (org_id, user_id)
		)`,
		`CREATE TABLE access_keys (
			id BIGINT PRIMARY KEY,
			name TEXT,
			key_hash TEXT NOT NULL UNIQUE,
			thumbnail TEXT NOT NULL,
			create_time DATETIME NOT NULL,
			revoke_time DATETIME,
			user_id BIGINT NOT NULL,
			org_id BIGINT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO organizations (id, name, currency, create_time) VALUES (?, 'acme', 'USD', ?)`, []any{orgA, now}},
		{`INSERT INTO organizations (id, name, currency, create_time) VALUES (?, 'globex', 'USD', ?)`, []any{orgB, now}},
		{`INSERT INTO users (id, username, email, create_time) VALUES (?, 'alice', 'alice@example.com', ?)`, []any{alice, now}},
		{`INSERT INTO users (id, username, email, create_time) VALUES (?, 'bob', 'bob@example.com', ?)`, []any{bob, now}},
		{`INSERT INTO memberships (id, org_id, user_id, role, create_time) VALUES (1, ?, ?, 'OWNER', ?)`, []any{orgA, alice, now}},
		{`INSERT INTO memberships (id, org_id, user_id, role, create_time) VALUES (2, ?, ?, 'MEMBER', ?)`, []any{orgA, bob, now}},
		{`INSERT INTO memberships (id, org_id, user_id, role, create_time) VALUES (3, ?, ?, 'OWNER', ?)`, []any{orgB, alice, now}},
		{`INSERT INTO access_keys (id, key_hash, thumbnail, create_time, user_id, org_id) VALUES (100, 'hash-a', 'mk.abc...def', ?, ?, ?)`, []any{now, alice, orgA}},
		{`INSERT INTO access_keys (id, key_hash, thumbnail, create_time, revoke_time, user_id, org_id) VALUES (101, 'hash-b', 'mk.ghi...jkl', ?, ?, ?, ?)`, []any{now, now.Add(time.Hour), alice, orgA}},
		{`INSERT INTO access_keys (id, key_hash, thumbnail, create_time, user_id, org_id) VALUES (102, 'hash-c', 'mk.mno...pqr', ?, ?, ?)`, []any{now, alice, orgB}},
	}
	for _, s := range seed {
		if err := db.Exec(s.sql, s.args...).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestUsersOfOrganizationDefaults(t *testing.T) {
	service, _ := setupQueryService(t)

	rows, err := service.UsersOfOrganization(context.Background(), orgA, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 members, got %d", len(rows))
	}
	if rows[0]["username"] != "alice" || rows[1]["username"] != "bob" {
		t.Fatalf("unexpected members: %v", rows)
	}
	if _, ok := rows[0]["company"]; ok {
		t.Fatalf("default projection must not include company")
	}
}

func TestUsersOfOrganizationCustomColumns(t *testing.T) {
	service, _ := setupQueryService(t)

	rows, err := service.UsersOfOrganization(context.Background(), orgA, []string{"email", "create_time"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if _, ok := rows[0]["username"]; ok {
		t.Fatalf("projection must contain only requested columns")
	}
	if rows[0]["email"] != "alice@example.com" {
		t.Fatalf("unexpected email %v", rows[0]["email"])
	}

	if _, err := service.UsersOfOrganization(context.Background(), orgA, []string{"password"}); err != querydomain.ErrInvalidColumn {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
}

func TestOrganizationsOfUserIncludesRole(t *testing.T) {
	service, _ := setupQueryService(t)

	rows, err := service.OrganizationsOfUser(context.Background(), alice, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 organizations, got %d", len(rows))
	}
	if rows[0]["name"] != "acme" || rows[0]["role"] != "OWNER" {
		t.Fatalf("unexpected first org: %v", rows[0])
	}

	none, err := service.OrganizationsOfUser(context.Background(), int64(99999999999), nil)
	if err != nil {
		t.Fatalf("query empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no organizations for unknown user, got %d", len(none))
	}
}

func TestUserKeysExcludeRevoked(t *testing.T) {
	service, _ := setupQueryService(t)

	grouped, err := service.UserKeysInOrganizations(context.Background(), alice, []int64{orgA, orgB}, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if len(grouped[orgA]) != 1 {
		t.Fatalf("expected one live key in orgA, got %d", len(grouped[orgA]))
	}
	if len(grouped[orgB]) != 1 {
		t.Fatalf("expected one live key in orgB, got %d", len(grouped[orgB]))
	}
	if grouped[orgA][0]["thumbnail"] != "mk.abc...def" {
		t.Fatalf("revoked key leaked into projection: %v", grouped[orgA][0])
	}
	if _, ok := grouped[orgA][0]["key_hash"]; ok {
		t.Fatalf("key hash must not be projectable")
	}
}

func TestUserProfileAndOrgLookup(t *testing.T) {
	service, _ := setupQueryService(t)
	ctx := context.Background()

	profile, err := service.UserProfile(ctx, alice)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile["username"] != "alice" || profile["email"] != "alice@example.com" {
		t.Fatalf("unexpected profile %v", profile)
	}

	if _, err := service.UserProfile(ctx, int64(99999999999)); err != querydomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	id, err := service.OrganizationIDByName(ctx, "globex")
	if err != nil {
		t.Fatalf("org by name: %v", err)
	}
	if id != orgB {
		t.Fatalf("expected %d, got %d", orgB, id)
	}

	if _, err := service.OrganizationIDByName(ctx, "missing"); err != querydomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
