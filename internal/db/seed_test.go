package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userservice/internal/model"
)

func TestSeedRoles(t *testing.T) {
	gdb := openMemory(t)
	require.NoError(t, Migrate(gdb))

	created, err := SeedRoles(gdb)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = SeedRoles(gdb, "customer", " support ", "")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var roles []model.Role
	require.NoError(t, gdb.Order("role_id").Find(&roles).Error)
	require.Len(t, roles, 3)
	assert.Equal(t, "admin", roles[0].Name)
	assert.Equal(t, "customer", roles[1].Name)
	assert.Equal(t, "support", roles[2].Name)
}
