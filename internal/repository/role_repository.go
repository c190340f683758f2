package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "userservice/internal/errors"
	"userservice/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id uint) (*model.Role, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	UpdateName(ctx context.Context, id uint, name string) error
	CountUsers(ctx context.Context, roleID uint) (int64, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoleRepository) error) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create inserts a role. A taken name yields a ConstraintError.
func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return roleWriteError(role.Name, err)
	}
	return nil
}

func (r *roleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("role_id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByIDForUpdate finds a role by ID with a row-level lock. Only meaningful inside WithTransaction.
func (r *roleRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role_id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("role_name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := r.db.WithContext(ctx).Order("role_id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// UpdateName overwrites role_name. A missing row yields gorm.ErrRecordNotFound.
func (r *roleRepository) UpdateName(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&model.Role{}).
		Where("role_id = ?", id).
		Update("role_name", name)
	if res.Error != nil {
		return roleWriteError(name, res.Error)
	}
	if res.RowsAffected == 0 {
		// mysql reports 0 when the value is unchanged, so confirm the row exists.
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Role{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// CountUsers returns how many users reference the role.
func (r *roleRepository) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("role_id = ?", roleID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByID removes a role and reports whether a row existed.
func (r *roleRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("role_id = ?", id).Delete(&model.Role{})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return false, &apperrors.ConstraintError{Entity: "role", Reason: "is referenced by existing users", Err: res.Error}
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// WithTransaction executes a function within a database transaction.
func (r *roleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &roleRepository{db: tx}
		return fn(ctx, txRepo)
	})
}

func roleWriteError(name string, err error) error {
	if isDuplicateKey(err) {
		return apperrors.NewUniqueViolation("role", "role name", name, err)
	}
	return err
}
