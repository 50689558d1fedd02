// Package common defines shared sentinel errors used across the repository,
// service and transport layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Crypto errors (hashing/signing infrastructure failures).
	ErrHashing = errors.New("hashing error")
	ErrSigning = errors.New("signing error")

	// Token lifecycle errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
