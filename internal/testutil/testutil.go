// Package testutil builds databases for package tests.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userservice/internal/config"
	"userservice/internal/db"
	"userservice/internal/model"
)

// ErrForcedDB is returned by every query against SetupFailingDB.
var ErrForcedDB = errors.New("forced DB error")

// SetupTestDB opens a private in-memory sqlite database with the schema migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// SetupFailingDB returns a GORM handle whose queries and statements all fail.
func SetupFailingDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to initialize gorm DB: %v", err)
	}

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 16; i++ {
		mock.ExpectQuery(".").WillReturnError(ErrForcedDB)
		mock.ExpectBegin().WillReturnError(ErrForcedDB)
		mock.ExpectExec(".").WillReturnError(ErrForcedDB)
	}
	return gdb
}

// CreateRoles inserts roles in order and returns them with their ids.
func CreateRoles(t *testing.T, gdb *gorm.DB, names ...string) []model.Role {
	t.Helper()

	roles := make([]model.Role, 0, len(names))
	for _, name := range names {
		role := model.Role{Name: name}
		if err := gdb.Create(&role).Error; err != nil {
			t.Fatalf("Failed to create role %q: %v", name, err)
		}
		roles = append(roles, role)
	}
	return roles
}
