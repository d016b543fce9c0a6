// Package common defines shared constants and sentinel errors used across
// the RealtyHub server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken         = errors.New("invalid token")

	// Session lifecycle errors. ErrorInvalidSession covers unknown users,
	// stale pairs from a prior rotation and tampered values alike.
	ErrorInvalidSession = errors.New("invalid or expired session")
)
