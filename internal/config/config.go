package config

import "time"

// Driver names accepted in Config.StorageDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the authkeeper CLI.
//
// Fields:
//   - StorageDriver: which key-value backend to open ("sqlite" or "postgres").
//   - DatabaseDSN: DSN passed to the backend driver.
//   - HashCredentials: store salted argon2id digests instead of plaintext
//     secrets. Existing accounts keep the encoding they were created with.
//   - SimulatedLatency: artificial delay applied to login/signup after
//     validation, mirroring a remote round-trip. Zero disables it.
type Config struct {
	StorageDriver    string
	DatabaseDSN      string
	HashCredentials  bool
	SimulatedLatency time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.DatabaseDSN = "authkeeper.db"
	c.HashCredentials = false
	c.SimulatedLatency = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
