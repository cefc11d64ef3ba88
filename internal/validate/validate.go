// Package validate holds the per-field form validators used by interactive
// callers. They are stricter than the checks the session manager applies
// itself, so a value the form accepts always passes the manager too.
package validate

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether the trimmed input looks like a deliverable address:
// matching the pattern, no consecutive dots, and no trailing dot.
func Email(email string) bool {
	trimmed := strings.TrimSpace(email)

	if strings.Contains(trimmed, "..") || strings.HasSuffix(trimmed, ".") {
		return false
	}

	return emailRegex.MatchString(trimmed)
}

// Password reports whether the password is at least 6 characters long.
func Password(password string) bool {
	return len(password) >= 6
}

// Name reports whether the trimmed name is at least 2 characters long.
func Name(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// ConfirmPassword reports whether the confirmation matches the original.
func ConfirmPassword(password, confirm string) bool {
	return password == confirm
}
