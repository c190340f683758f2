package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"userservice/internal/cache"
	apperrors "userservice/internal/errors"
	"userservice/internal/model"
	"userservice/internal/repository"
)

const defaultCacheTTL = 5 * time.Minute

// RoleService exposes role operations and default-role resolution.
type RoleService interface {
	SaveRole(ctx context.Context, role *model.Role) (*model.Role, error)
	GetRoleByID(ctx context.Context, id uint) (*model.Role, bool, error)
	GetAllRoles(ctx context.Context) ([]model.Role, error)
	DeleteRoleByID(ctx context.Context, id uint) (bool, error)
	UpdateRoleByID(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, bool, error)
	// GetDefaultRole returns the role assigned to new users.
	GetDefaultRole(ctx context.Context) (*model.Role, error)
	// ResolveDefaultRole looks the default role up by its configured name and caches it.
	ResolveDefaultRole(ctx context.Context) (*model.Role, error)
}

// RoleServiceConfig holds tunables for NewRoleService.
type RoleServiceConfig struct {
	DefaultRoleName string
	CacheTTL        time.Duration
}

type roleService struct {
	repo        repository.RoleRepository
	cache       *cache.Client
	ttl         time.Duration
	defaultName string
	defaultRole atomic.Pointer[model.Role]
}

// NewRoleService builds a RoleService with repository and cache.
func NewRoleService(repo repository.RoleRepository, cache *cache.Client, cfg RoleServiceConfig) RoleService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &roleService{
		repo:        repo,
		cache:       cache,
		ttl:         cfg.CacheTTL,
		defaultName: cfg.DefaultRoleName,
	}
}

func (s *roleService) cacheKey(id uint) string {
	return fmt.Sprintf("role:%d", id)
}

// SaveRole inserts a role when it has no id, or when its id is unknown, and
// renames the stored role otherwise.
func (s *roleService) SaveRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	name, err := validRoleName(role.Name)
	if err != nil {
		return nil, err
	}
	role.Name = name

	if role.ID == 0 {
		if err := s.repo.Create(ctx, role); err != nil {
			return nil, recordConstraint(err)
		}
		zerolog.Ctx(ctx).Info().Uint("role_id", role.ID).Str("role_name", role.Name).Msg("role created")
		return role, nil
	}

	saved, found, err := s.UpdateRoleByID(ctx, role.ID, model.RolePatch{Name: name})
	if err != nil {
		return nil, err
	}
	if found {
		return saved, nil
	}
	fresh := &model.Role{Name: name}
	if err := s.repo.Create(ctx, fresh); err != nil {
		return nil, recordConstraint(err)
	}
	zerolog.Ctx(ctx).Info().Uint("role_id", fresh.ID).Str("role_name", fresh.Name).Msg("role created")
	return fresh, nil
}

func (s *roleService) GetRoleByID(ctx context.Context, id uint) (*model.Role, bool, error) {
	var cached model.Role
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, true, nil
	}

	role, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get role %d: %w", id, err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), role, s.ttl)
	return role, true, nil
}

func (s *roleService) GetAllRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// DeleteRoleByID removes a role. The default role and roles still assigned
// to users are rejected with a constraint violation.
func (s *roleService) DeleteRoleByID(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.RoleRepository) error {
		role, err := repo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.isDefault(role) {
			return &apperrors.ConstraintError{Entity: "role", Value: role.Name, Reason: "is the default role"}
		}
		users, err := repo.CountUsers(ctx, id)
		if err != nil {
			return err
		}
		if users > 0 {
			return &apperrors.ConstraintError{Entity: "role", Value: role.Name, Reason: "is referenced by existing users"}
		}
		deleted, err = repo.DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return false, recordConstraint(wrapUnlessDomain(err, "delete role %d", id))
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if deleted {
		zerolog.Ctx(ctx).Info().Uint("role_id", id).Msg("role deleted")
	}
	return deleted, nil
}

// UpdateRoleByID overwrites the role name.
func (s *roleService) UpdateRoleByID(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, bool, error) {
	var (
		name    string
		updated *model.Role
	)
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.RoleRepository) error {
		role, err := repo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if name, err = validRoleName(patch.Name); err != nil {
			return err
		}
		if role.Name != name && s.isDefault(role) {
			return &apperrors.ConstraintError{Entity: "role", Field: "role name", Value: role.Name, Reason: "of the default role cannot change"}
		}
		if err := repo.UpdateName(ctx, id, name); err != nil {
			return err
		}
		role.Name = name
		updated = role
		return nil
	})
	if err != nil {
		return nil, false, recordConstraint(wrapUnlessDomain(err, "update role %d", id))
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	if updated == nil {
		return nil, false, nil
	}
	zerolog.Ctx(ctx).Info().Uint("role_id", id).Str("role_name", name).Msg("role updated")
	return updated, true, nil
}

// GetDefaultRole returns the cached default role, resolving it on first use.
func (s *roleService) GetDefaultRole(ctx context.Context) (*model.Role, error) {
	if role := s.defaultRole.Load(); role != nil {
		copied := *role
		return &copied, nil
	}
	return s.ResolveDefaultRole(ctx)
}

func (s *roleService) ResolveDefaultRole(ctx context.Context) (*model.Role, error) {
	role, err := s.repo.FindByName(ctx, s.defaultName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewDefaultRoleMissing(s.defaultName)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve default role: %w", err)
	}
	s.defaultRole.Store(&model.Role{ID: role.ID, Name: role.Name})
	return role, nil
}

func (s *roleService) isDefault(role *model.Role) bool {
	if current := s.defaultRole.Load(); current != nil {
		return current.ID == role.ID
	}
	return role.Name == s.defaultName
}

func validRoleName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &apperrors.InvalidInputError{Field: "roleName", Reason: "is required"}
	}
	return name, nil
}
