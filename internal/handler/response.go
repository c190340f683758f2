package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "userservice/internal/errors"
)

// respondError writes the JSON envelope for a domain or store error.
// Server-side failures are logged and reported generically.
func respondError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

func respondStatus(c echo.Context, status int, message, code string) error {
	return c.JSON(status, apperrors.ErrorResponse{Error: message, Code: code})
}

func notFound(c echo.Context, message string) error {
	return respondStatus(c, http.StatusNotFound, message, "NOT_FOUND")
}

func badRequest(c echo.Context, message string) error {
	return respondStatus(c, http.StatusBadRequest, message, "INVALID_INPUT")
}

// idParam parses a positive integer path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, &apperrors.InvalidInputError{Field: name, Reason: "must be a positive integer"}
	}
	return uint(id), nil
}

// bindAndValidate binds the request into dst and runs validation when a validator is configured.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return &apperrors.InvalidInputError{Field: "body", Reason: "is not a valid payload"}
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(dst)
}
