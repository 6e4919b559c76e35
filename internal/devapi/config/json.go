package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fletes/internal/flagx"
	"github.com/dmitrijs2005/fletes/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations accept "90m" or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string         `json:"log_level"`
	Seed                        *bool          `json:"seed"`
}

// parseJson overlays config with the file named by -c or -config. It panics
// when the file cannot be read or parsed.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
}
