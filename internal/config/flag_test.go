package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-s", "postgres", "-d", "postgres://localhost/auth", "-p", "-l", "500"},
			expected: &Config{
				StorageDriver:    DriverPostgres,
				DatabaseDSN:      "postgres://localhost/auth",
				HashCredentials:  true,
				SimulatedLatency: 500 * time.Millisecond,
			},
		},
		{
			name:     "no flags keeps existing values",
			args:     []string{"cmd"},
			expected: &Config{},
		},
		{
			name:        "incorrect latency",
			args:        []string{"cmd", "-l", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
