package service

import (
	"errors"
	"fmt"

	apperrors "userservice/internal/errors"
	"userservice/internal/metrics"
)

// recordConstraint counts constraint violations and passes err through.
func recordConstraint(err error) error {
	var ce *apperrors.ConstraintError
	if errors.As(err, &ce) {
		metrics.ConstraintViolationsTotal.WithLabelValues(ce.Entity, ce.Field).Inc()
	}
	return err
}

// wrapUnlessDomain adds context to store failures and leaves domain errors untouched.
func wrapUnlessDomain(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrConstraintViolation) ||
		errors.Is(err, apperrors.ErrInvalidInput) ||
		errors.Is(err, apperrors.ErrConfigurationFault) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
