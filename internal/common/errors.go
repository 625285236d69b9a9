// Package common defines sentinel errors and small helpers shared by the
// Tasklists account store packages. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Key/cipher errors.
	ErrCrypto = errors.New("crypto error")

	// Store errors.
	ErrStoreLoad = errors.New("malformed users file")

	// Flow outcomes the caller may retry after.
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")

	// Flow outcomes that end the process.
	ErrNoUsersConfigured    = errors.New("no users configured")
	ErrRegistrationDeclined = errors.New("registration declined")

	// Console errors.
	ErrInputClosed     = errors.New("input closed")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
