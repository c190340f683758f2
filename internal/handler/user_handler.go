package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userservice/internal/model"
	"userservice/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type signupRequest struct {
	Username      *string `json:"username" validate:"omitempty,max=255"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Password      string  `json:"password" validate:"required,max=72"`
	ContactNumber string  `json:"contactNumber" validate:"required,max=50"`
	State         string  `json:"state" validate:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" query:"email"`
	Password string `json:"password" form:"password" query:"password"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,max=72"`
}

type existsResponse struct {
	Username *bool `json:"username,omitempty"`
	Email    *bool `json:"email,omitempty"`
}

// Signup godoc
// @Summary Register user with the default role
// @Tags users
// @Accept json
// @Produce json
// @Param user body signupRequest true "Signup payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()

	// advisory checks for friendlier messages; the unique indexes still decide
	if req.Username != nil && *req.Username != "" {
		taken, err := h.svc.ExistsByUsername(ctx, *req.Username)
		if err != nil {
			return respondError(c, err)
		}
		if taken {
			return respondStatus(c, http.StatusBadRequest, "username already exists", "CONSTRAINT_VIOLATION")
		}
	}
	taken, err := h.svc.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if taken {
		return respondStatus(c, http.StatusBadRequest, "email already exists", "CONSTRAINT_VIOLATION")
	}

	user, err := h.svc.SignupUser(ctx, &model.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
		State:         req.State,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Verify email and password
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param email query string false "Email"
// @Param password query string false "Password"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if req.Email == "" {
		req.Email = c.QueryParam("email")
	}
	if req.Password == "" {
		req.Password = c.QueryParam("password")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	user, found, err := h.svc.AuthenticateByEmail(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return respondStatus(c, http.StatusUnauthorized, "invalid email or password", "INVALID_CREDENTIALS")
	}
	return c.JSON(http.StatusOK, user)
}

// Exists godoc
// @Summary Check whether a username or email is taken
// @Tags users
// @Produce json
// @Param username query string false "Username"
// @Param email query string false "Email"
// @Success 200 {object} existsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/exists [get]
func (h *UserHandler) Exists(c echo.Context) error {
	username, email := c.QueryParam("username"), c.QueryParam("email")
	if username == "" && email == "" {
		return badRequest(c, "username or email is required")
	}
	ctx := c.Request().Context()

	var resp existsResponse
	if username != "" {
		ok, err := h.svc.ExistsByUsername(ctx, username)
		if err != nil {
			return respondError(c, err)
		}
		resp.Username = &ok
	}
	if email != "" {
		ok, err := h.svc.ExistsByEmail(ctx, email)
		if err != nil {
			return respondError(c, err)
		}
		resp.Email = &ok
	}
	return c.JSON(http.StatusOK, resp)
}

// GetUserByID godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/get-by-id/{id} [get]
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	return h.respondUser(c)(h.svc.GetUserByID(c.Request().Context(), id))
}

// GetUserByUsername godoc
// @Summary Get user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/get-by-username/{username} [get]
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	return h.respondUser(c)(h.svc.GetUserByUsername(c.Request().Context(), c.Param("username")))
}

// GetUserByEmail godoc
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/get-by-email/{email} [get]
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	return h.respondUser(c)(h.svc.GetUserByEmail(c.Request().Context(), c.Param("email")))
}

func (h *UserHandler) respondUser(c echo.Context) func(*model.User, bool, error) error {
	return func(user *model.User, found bool, err error) error {
		if err != nil {
			return respondError(c, err)
		}
		if !found {
			return notFound(c, "user not found")
		}
		return c.JSON(http.StatusOK, user)
	}
}

// GetAllUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users/get-all [get]
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.svc.GetAllUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/delete/{userId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := idParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}
	deleted, err := h.svc.DeleteUserByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return notFound(c, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

// UpdateUser godoc
// @Summary Overwrite username, email and password
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param user body updateUserRequest true "Update payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/update/{userId} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := idParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	user, found, err := h.svc.UpdateUserByID(c.Request().Context(), id, model.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return notFound(c, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}
