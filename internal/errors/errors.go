package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrConstraintViolation is matched by every uniqueness or referential integrity failure.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrConfigurationFault is returned when the service is missing required setup, such as the default role.
	ErrConfigurationFault = errors.New("configuration fault")
	// ErrInvalidInput is returned when a request carries a malformed or missing field.
	ErrInvalidInput = errors.New("invalid input")
)

// ConstraintError describes which rule a write broke.
type ConstraintError struct {
	Entity string
	Field  string
	Value  string
	Reason string
	Err    error
}

// NewUniqueViolation reports a collision on a unique field.
func NewUniqueViolation(entity, field, value string, cause error) *ConstraintError {
	return &ConstraintError{Entity: entity, Field: field, Value: value, Reason: "already exists", Err: cause}
}

func (e *ConstraintError) Error() string {
	if e.Field != "" {
		return e.Field + " " + e.Reason
	}
	return e.Entity + " " + e.Reason
}

func (e *ConstraintError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConstraintViolation}
	}
	return []error{ErrConstraintViolation, e.Err}
}

// ConfigurationError names the setting that could not be satisfied.
type ConfigurationError struct {
	Setting string
	Value   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %q is not usable", e.Setting, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfigurationFault }

// NewDefaultRoleMissing is returned when the configured default role does not exist.
func NewDefaultRoleMissing(name string) *ConfigurationError {
	return &ConfigurationError{
		Setting: "DEFAULT_ROLE_NAME",
		Value:   name,
		Message: fmt.Sprintf("default role %q not found", name),
	}
}

// InvalidInputError names the offending field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so internals never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConstraintViolation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONSTRAINT_VIOLATION")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrConfigurationFault):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "CONFIGURATION_FAULT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
