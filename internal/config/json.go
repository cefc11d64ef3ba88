package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the latency either as a string like
// "500ms" or as integer nanoseconds. Pointer fields distinguish "absent"
// from zero values; absent fields leave the Config untouched.
type JsonConfig struct {
	StorageDriver    *string         `json:"storage_driver"`
	DatabaseDSN      *string         `json:"database_dsn"`
	HashCredentials  *bool           `json:"hash_credentials"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither flag is present nothing is loaded.
// Read or unmarshal errors panic, matching the fail-fast startup policy.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageDriver != nil {
		cfg.StorageDriver = *jc.StorageDriver
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.HashCredentials != nil {
		cfg.HashCredentials = *jc.HashCredentials
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
}
