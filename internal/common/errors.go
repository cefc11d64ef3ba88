// Package common defines shared constants and sentinel errors used across
// the session manager and its callers. The sentinel messages are the exact
// strings surfaced to the user, and callers should use errors.Is to match.
package common

import "errors"

var (
	// Validation errors. Detected before any storage access and always
	// recoverable by correcting input.
	ErrCredentialsRequired = errors.New("Email and password are required")
	ErrAllFieldsRequired   = errors.New("All fields are required")
	ErrInvalidEmailFormat  = errors.New("Invalid email format")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters long")

	// Credential mismatch. One generic message on purpose, so the caller
	// cannot tell whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// Duplicate account on signup (case-insensitive email match).
	ErrDuplicateAccount = errors.New("User with this email already exists")

	// Storage failures collapse to one generic message per operation.
	// The underlying cause is logged, never surfaced.
	ErrLoginFailed  = errors.New("An error occurred during login")
	ErrSignupFailed = errors.New("An error occurred during signup")
)
