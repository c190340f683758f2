package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "userservice/internal/errors"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hashed)
	assert.False(t, h.NeedsRehash(hashed))

	ok, err := h.Verify("pw1", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("bad", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_Hash_InvalidInput(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBcryptHasher_LegacyPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("pw1", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("pw2", "pw1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, h.NeedsRehash("pw1"))
}

func TestBcryptHasher_NeedsRehashOnLowerCost(t *testing.T) {
	weak, err := NewBcryptHasher(bcrypt.MinCost).Hash("pw1")
	require.NoError(t, err)

	assert.True(t, NewBcryptHasher(bcrypt.MinCost+1).NeedsRehash(weak))
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultBcryptCost, NewBcryptHasher(99).cost)
}
