// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. NotFound covers both absent and not-owned
	// resources.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Credential errors.
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	// Settings errors.
	ErrInvalidTheme = errors.New("invalid theme")

	// Generation errors.
	ErrInvalidCategory  = errors.New("invalid category")
	ErrContentBlocked   = errors.New("content blocked")
	ErrGenerationFailed = errors.New("generation failed")
)
