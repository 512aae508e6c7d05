// Package common defines shared constants and sentinel errors used across
// the NoteShare server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Conflict errors, mapped from unique-constraint violations.
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingAuthHeader covers both an absent Authorization header and
	// one without the Bearer prefix.
	ErrMissingAuthHeader = errors.New("authorization header is missing or malformed")
)
