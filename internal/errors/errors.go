package errors

import (
	"errors"
	"fmt"
)

// Common error types for the marketplace client
var (
	// Authentication errors
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Token errors
	ErrNoRefreshToken     = errors.New("no refresh token stored")
	ErrRefreshFailed      = errors.New("token refresh failed")
	ErrSessionExpired     = errors.New("session expired")
	ErrPartialCredentials = errors.New("access and refresh tokens must be stored together")

	// Request errors
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrBadRequest = errors.New("bad request")

	// Storage errors
	ErrStorageUnavailable = errors.New("durable storage unavailable")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
