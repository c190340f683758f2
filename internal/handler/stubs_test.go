package handler

import (
	"context"

	"userservice/internal/model"
)

type stubUserService struct {
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	signupFn           func(ctx context.Context, candidate *model.User) (*model.User, error)
	authenticateFn     func(ctx context.Context, email, password string) (*model.User, bool, error)
	getByIDFn          func(ctx context.Context, id uint) (*model.User, bool, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, bool, error)
	getByEmailFn       func(ctx context.Context, email string) (*model.User, bool, error)
	getAllFn           func(ctx context.Context) ([]model.User, error)
	deleteFn           func(ctx context.Context, id uint) (bool, error)
	updateFn           func(ctx context.Context, id uint, patch model.UserPatch) (*model.User, bool, error)
}

func (s *stubUserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if s.existsByUsernameFn == nil {
		return false, nil
	}
	return s.existsByUsernameFn(ctx, username)
}

func (s *stubUserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if s.existsByEmailFn == nil {
		return false, nil
	}
	return s.existsByEmailFn(ctx, email)
}

func (s *stubUserService) SignupUser(ctx context.Context, candidate *model.User) (*model.User, error) {
	return s.signupFn(ctx, candidate)
}

func (s *stubUserService) AuthenticateByEmail(ctx context.Context, email, password string) (*model.User, bool, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubUserService) GetUserByID(ctx context.Context, id uint) (*model.User, bool, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) GetUserByUsername(ctx context.Context, username string) (*model.User, bool, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserService) GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) DeleteUserByID(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) UpdateUserByID(ctx context.Context, id uint, patch model.UserPatch) (*model.User, bool, error) {
	return s.updateFn(ctx, id, patch)
}

type stubRoleService struct {
	saveFn    func(ctx context.Context, role *model.Role) (*model.Role, error)
	getByIDFn func(ctx context.Context, id uint) (*model.Role, bool, error)
	getAllFn  func(ctx context.Context) ([]model.Role, error)
	deleteFn  func(ctx context.Context, id uint) (bool, error)
	updateFn  func(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, bool, error)
}

func (s *stubRoleService) SaveRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	return s.saveFn(ctx, role)
}

func (s *stubRoleService) GetRoleByID(ctx context.Context, id uint) (*model.Role, bool, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubRoleService) GetAllRoles(ctx context.Context) ([]model.Role, error) {
	return s.getAllFn(ctx)
}

func (s *stubRoleService) DeleteRoleByID(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubRoleService) UpdateRoleByID(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, bool, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubRoleService) GetDefaultRole(ctx context.Context) (*model.Role, error) {
	return &model.Role{ID: 2, Name: "customer"}, nil
}

func (s *stubRoleService) ResolveDefaultRole(ctx context.Context) (*model.Role, error) {
	return s.GetDefaultRole(ctx)
}
