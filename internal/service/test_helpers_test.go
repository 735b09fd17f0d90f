package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alpine-labs/my-pace/internal/db"
	"github.com/alpine-labs/my-pace/internal/model"
	"github.com/alpine-labs/my-pace/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mypace.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestUser(t *testing.T, sqldb *sql.DB) *model.User {
	t.Helper()
	user, err := service.GetOrCreateUser(sqldb)
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}
	return user
}
