package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userservice/internal/model"
	"userservice/internal/service"
)

// RoleHandler bundles role HTTP handlers.
type RoleHandler struct {
	svc service.RoleService
}

// NewRoleHandler creates a handler layer.
func NewRoleHandler(svc service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

type roleRequest struct {
	RoleName string `json:"roleName" validate:"required,max=100"`
}

// AddRole godoc
// @Summary Create role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body roleRequest true "Role payload"
// @Success 201 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Router /roles/add [post]
func (h *RoleHandler) AddRole(c echo.Context) error {
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	role, err := h.svc.SaveRole(c.Request().Context(), &model.Role{Name: req.RoleName})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, role)
}

// GetRoleByID godoc
// @Summary Get role by id
// @Tags roles
// @Produce json
// @Param roleId path int true "Role ID"
// @Success 200 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/get-by-id/{roleId} [get]
func (h *RoleHandler) GetRoleByID(c echo.Context) error {
	id, err := idParam(c, "roleId")
	if err != nil {
		return respondError(c, err)
	}
	role, found, err := h.svc.GetRoleByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return notFound(c, "role not found")
	}
	return c.JSON(http.StatusOK, role)
}

// GetAllRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} model.Role
// @Router /roles/get-all [get]
func (h *RoleHandler) GetAllRoles(c echo.Context) error {
	roles, err := h.svc.GetAllRoles(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// DeleteRole godoc
// @Summary Delete role
// @Tags roles
// @Produce json
// @Param roleId path int true "Role ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/delete/{roleId} [delete]
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := idParam(c, "roleId")
	if err != nil {
		return respondError(c, err)
	}
	deleted, err := h.svc.DeleteRoleByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return notFound(c, "role not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

// UpdateRole godoc
// @Summary Rename role
// @Tags roles
// @Accept json
// @Produce json
// @Param roleId path int true "Role ID"
// @Param role body roleRequest true "Role payload"
// @Success 200 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/update/{roleId} [put]
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := idParam(c, "roleId")
	if err != nil {
		return respondError(c, err)
	}
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	role, found, err := h.svc.UpdateRoleByID(c.Request().Context(), id, model.RolePatch{Name: req.RoleName})
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return notFound(c, "role not found")
	}
	return c.JSON(http.StatusOK, role)
}
