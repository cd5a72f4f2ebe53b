// Package common defines shared constants and sentinel errors used across
// the storefront client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("not enough rights")

	// Token errors (local, advisory checks).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors, rejected before any network call.
	ErrValidation = errors.New("validation error")
)
