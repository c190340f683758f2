package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "userservice/internal/errors"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 10

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a one-way hash of password.
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored value.
	// A mismatch is (false, nil), not an error.
	Verify(password, stored string) (bool, error)
	// NeedsRehash reports whether the stored value should be replaced by a fresh hash.
	NeedsRehash(stored string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher. Out of range costs fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", &apperrors.InvalidInputError{Field: "password", Reason: "is required"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &apperrors.InvalidInputError{Field: "password", Reason: "must be at most 72 bytes"}
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, stored string) (bool, error) {
	if stored == "" {
		return false, nil
	}
	if !isBcryptHash(stored) {
		// rows written before hashing was introduced hold the plaintext
		return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h *BcryptHasher) NeedsRehash(stored string) bool {
	if !isBcryptHash(stored) {
		return true
	}
	cost, err := bcrypt.Cost([]byte(stored))
	return err != nil || cost < h.cost
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
