package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"userservice/internal/config"
	"userservice/internal/model"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=1",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestMigrateAndReset(t *testing.T) {
	gdb := openMemory(t)

	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable(&model.Role{}))
	assert.True(t, gdb.Migrator().HasTable(&model.User{}))
	assert.True(t, gdb.Migrator().HasIndex(&model.User{}, "Email"))
	assert.True(t, gdb.Migrator().HasIndex(&model.User{}, "Username"))
	assert.NoError(t, Ping(context.Background(), gdb))

	require.NoError(t, Reset(gdb))
	assert.False(t, gdb.Migrator().HasTable(&model.User{}))
	assert.False(t, gdb.Migrator().HasTable(&model.Role{}))
}

func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	gdb := openMemory(t)
	require.NoError(t, Migrate(gdb))

	require.NoError(t, gdb.Create(&model.Role{Name: "customer"}).Error)
	err := gdb.Create(&model.Role{Name: "customer"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	gdb := openMemory(t)
	require.NoError(t, Migrate(gdb))

	err := gdb.Omit("Role").Create(&model.User{
		Email:         "a@x.com",
		Password:      "h",
		ContactNumber: "1",
		State:         "CA",
		RoleID:        42,
	}).Error
	assert.Error(t, err)
}

func TestMigrate_UserReferencesRole(t *testing.T) {
	gdb := openMemory(t)
	require.NoError(t, Migrate(gdb))

	assert.True(t, gdb.Migrator().HasConstraint(&model.User{}, "Role"))

	var usersDDL, rolesDDL string
	require.NoError(t, gdb.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'users'").Scan(&usersDDL).Error)
	require.NoError(t, gdb.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'roles'").Scan(&rolesDDL).Error)
	assert.Contains(t, usersDDL, "REFERENCES `roles`")
	assert.NotContains(t, rolesDDL, "FOREIGN KEY")

	// roles insert with no users present
	role := model.Role{Name: "customer"}
	require.NoError(t, gdb.Create(&role).Error)
	require.NoError(t, gdb.Omit("Role").Create(&model.User{
		Email:         "a@x.com",
		Password:      "h",
		ContactNumber: "1",
		State:         "CA",
		RoleID:        role.ID,
	}).Error)

	err := gdb.Delete(&model.Role{}, role.ID).Error
	assert.Error(t, err)
}
