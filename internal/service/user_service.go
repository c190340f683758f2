package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"userservice/internal/auth"
	"userservice/internal/cache"
	apperrors "userservice/internal/errors"
	"userservice/internal/metrics"
	"userservice/internal/model"
	"userservice/internal/repository"
)

// UserService exposes domain operations.
type UserService interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SignupUser(ctx context.Context, candidate *model.User) (*model.User, error)
	AuthenticateByEmail(ctx context.Context, email, password string) (*model.User, bool, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	DeleteUserByID(ctx context.Context, id uint) (bool, error)
	UpdateUserByID(ctx context.Context, id uint, patch model.UserPatch) (*model.User, bool, error)
}

// UserServiceConfig holds tunables for NewUserService.
type UserServiceConfig struct {
	CacheTTL time.Duration
}

type userService struct {
	repo   repository.UserRepository
	roles  RoleService
	hasher auth.PasswordHasher
	cache  *cache.Client
	ttl    time.Duration

	dummyOnce sync.Once
	dummy     string
}

// NewUserService builds a UserService with repository, role lookup, hasher and cache.
func NewUserService(repo repository.UserRepository, roles RoleService, hasher auth.PasswordHasher, cache *cache.Client, cfg UserServiceConfig) UserService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &userService{repo: repo, roles: roles, hasher: hasher, cache: cache, ttl: cfg.CacheTTL}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// ExistsByUsername is advisory: a later insert may still collide.
func (s *userService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}
	ok, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return ok, nil
}

// ExistsByEmail is advisory: a later insert may still collide.
func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	ok, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return ok, nil
}

// SignupUser creates a user with the default role, ignoring any role on the candidate.
func (s *userService) SignupUser(ctx context.Context, candidate *model.User) (*model.User, error) {
	if err := validateSignup(candidate); err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	role, err := s.roles.GetDefaultRole(ctx)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	hashed, err := s.hasher.Hash(candidate.Password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, wrapUnlessDomain(err, "hash password")
	}

	user := &model.User{
		Username:      model.NormalizeUsername(candidate.Username),
		Email:         strings.TrimSpace(candidate.Email),
		Password:      hashed,
		ContactNumber: candidate.ContactNumber,
		State:         candidate.State,
		RoleID:        role.ID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		err = s.describeConflict(ctx, 0, user.Email, user.Username, err)
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return nil, recordConstraint(wrapUnlessDomain(err, "signup"))
	}
	user.Role = *role

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	zerolog.Ctx(ctx).Info().Uint("user_id", user.ID).Str("username", user.UsernameValue()).Uint("role_id", role.ID).Msg("user signed up")
	return user, nil
}

// AuthenticateByEmail reports found only when the email exists and the password
// verifies. An unknown email and a wrong password are indistinguishable.
func (s *userService) AuthenticateByEmail(ctx context.Context, email, password string) (*model.User, bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// equalise timing with the known-email path
		_, _ = s.hasher.Verify(password, s.dummyHash())
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("authenticate: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, false, nil
	}

	if s.hasher.NeedsRehash(user.Password) {
		s.rehash(ctx, user, password)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, true, nil
}

func (s *userService) rehash(ctx context.Context, user *model.User, password string) {
	hashed, err := s.hasher.Hash(password)
	if err == nil {
		err = s.repo.UpdatePassword(ctx, user.ID, hashed)
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("user_id", user.ID).Msg("password rehash failed")
		return
	}
	user.Password = hashed
	metrics.PasswordRehashesTotal.Inc()
}

func (s *userService) dummyHash() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.hasher.Hash("timing-equaliser")
	})
	return s.dummy
}

// cachedUser holds the user columns only. The role is resolved on every
// read so a renamed role never shows its old name.
type cachedUser struct {
	ID            uint    `json:"id"`
	Username      *string `json:"username"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	State         string  `json:"state"`
	RoleID        uint    `json:"roleId"`
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, bool, error) {
	var cached cachedUser
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		role, found, err := s.roles.GetRoleByID(ctx, cached.RoleID)
		if err == nil && found {
			return &model.User{
				ID:            cached.ID,
				Username:      cached.Username,
				Email:         cached.Email,
				ContactNumber: cached.ContactNumber,
				State:         cached.State,
				RoleID:        role.ID,
				Role:          *role,
			}, true, nil
		}
	}

	user, found, err := s.lookup(s.repo.FindByID(ctx, id))
	if err != nil || !found {
		return nil, found, wrapUnlessDomain(err, "get user %d", id)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), cachedUser{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		State:         user.State,
		RoleID:        user.RoleID,
	}, s.ttl)
	return user, true, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*model.User, bool, error) {
	user, found, err := s.lookup(s.repo.FindByUsername(ctx, username))
	return user, found, wrapUnlessDomain(err, "get user by username")
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	user, found, err := s.lookup(s.repo.FindByEmail(ctx, email))
	return user, found, wrapUnlessDomain(err, "get user by email")
}

func (s *userService) lookup(user *model.User, err error) (*model.User, bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUserByID(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if deleted {
		zerolog.Ctx(ctx).Info().Uint("user_id", id).Msg("user deleted")
	}
	return deleted, nil
}

// UpdateUserByID overwrites username, email and password. Contact number,
// state and role are kept. Collisions are left to the store to reject.
func (s *userService) UpdateUserByID(ctx context.Context, id uint, patch model.UserPatch) (*model.User, bool, error) {
	email := strings.TrimSpace(patch.Email)
	username := model.NormalizeUsername(patch.Username)

	var updated *model.User
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		user, err := repo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if email == "" {
			return &apperrors.InvalidInputError{Field: "email", Reason: "is required"}
		}
		hashed, err := s.hasher.Hash(patch.Password)
		if err != nil {
			return wrapUnlessDomain(err, "hash password")
		}
		user.Username = username
		user.Email = email
		user.Password = hashed
		if err := repo.UpdateCredentials(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		err = s.describeConflict(ctx, id, email, username, err)
		return nil, false, recordConstraint(wrapUnlessDomain(err, "update user %d", id))
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if updated == nil {
		return nil, false, nil
	}
	zerolog.Ctx(ctx).Info().Uint("user_id", id).Msg("user updated")
	return updated, true, nil
}

// describeConflict names the colliding field of a unique violation reported
// by the store. It runs after any transaction has ended.
func (s *userService) describeConflict(ctx context.Context, selfID uint, email string, username *string, err error) error {
	var ce *apperrors.ConstraintError
	if !errors.As(err, &ce) || ce.Field != "" {
		return err
	}
	if other, lookupErr := s.repo.FindByEmail(ctx, email); lookupErr == nil && other.ID != selfID {
		ce.Field, ce.Value = "email", email
		return err
	}
	if username != nil {
		if other, lookupErr := s.repo.FindByUsername(ctx, *username); lookupErr == nil && other.ID != selfID {
			ce.Field, ce.Value = "username", *username
		}
	}
	return err
}

func validateSignup(u *model.User) error {
	switch {
	case u == nil:
		return &apperrors.InvalidInputError{Field: "user", Reason: "is required"}
	case strings.TrimSpace(u.Email) == "":
		return &apperrors.InvalidInputError{Field: "email", Reason: "is required"}
	case u.Password == "":
		return &apperrors.InvalidInputError{Field: "password", Reason: "is required"}
	case u.ContactNumber == "":
		return &apperrors.InvalidInputError{Field: "contactNumber", Reason: "is required"}
	case u.State == "":
		return &apperrors.InvalidInputError{Field: "state", Reason: "is required"}
	}
	return nil
}
