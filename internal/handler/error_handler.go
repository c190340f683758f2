package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "userservice/internal/errors"
)

// NewHTTPErrorHandler renders errors that escape handlers, such as unknown
// routes, in the same envelope the handlers use.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, apperrors.ErrorResponse{
				Error: fmt.Sprintf("%v", he.Message),
				Code:  strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_")),
			})
			return
		}

		mapped := apperrors.MapErrorToHTTP(err)
		if mapped.StatusCode >= http.StatusInternalServerError {
			zerolog.Ctx(c.Request().Context()).Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		_ = c.JSON(mapped.StatusCode, mapped.ToErrorResponse())
	}
}
