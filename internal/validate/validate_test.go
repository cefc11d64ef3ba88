package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"test@example.com", true},
		{"user.name@domain.co.uk", true},
		{"user+tag@example.org", true},
		{"123@example.com", true},
		{"  test@example.com  ", true},

		{"invalid-email", false},
		{"test@", false},
		{"@example.com", false},
		{"test.example.com", false},
		{"", false},
		{"test@example", false},
		{"test@example..com", false},
		{"test..user@example.com", false},
		{"test@example.com.", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, Email(tc.email))
		})
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("password123"))
	assert.True(t, Password("123456"))
	assert.True(t, Password("      "), "6 spaces count")

	assert.False(t, Password("12345"))
	assert.False(t, Password(""))
}

func TestName(t *testing.T) {
	assert.True(t, Name("John"))
	assert.True(t, Name("Ab"))
	assert.True(t, Name("  John  "))
	assert.True(t, Name("O'Connor"))

	assert.False(t, Name("A"))
	assert.False(t, Name(""))
	assert.False(t, Name("   "))
}

func TestConfirmPassword(t *testing.T) {
	assert.True(t, ConfirmPassword("password123", "password123"))
	assert.True(t, ConfirmPassword("", ""))

	assert.False(t, ConfirmPassword("password123", "password456"))
	assert.False(t, ConfirmPassword("password123", ""))
}
