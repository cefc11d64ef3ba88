package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DriverSQLite, c.StorageDriver)
	assert.Equal(t, "authkeeper.db", c.DatabaseDSN)
	assert.False(t, c.HashCredentials)
	assert.Equal(t, time.Duration(0), c.SimulatedLatency)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "authkeeper.db", cfg.DatabaseDSN)
}
