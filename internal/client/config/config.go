package config

import (
	"errors"
	"time"
)

var ErrMissingBaseURL = errors.New("api base url is not configured")

// Config holds runtime settings for the fletes CLI.
//
// S3* fields are optional; when S3Bucket is set every downloaded report is
// also archived to that bucket.
type Config struct {
	APIBaseURL      string
	DatabasePath    string
	RequestTimeout  time.Duration
	SuccessDelay    time.Duration
	ReportsDir      string
	NoCostSuppliers []string
	LogLevel        string

	S3Bucket       string
	S3Prefix       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "fletes.db"
	c.RequestTimeout = 15 * time.Second
	c.SuccessDelay = 500 * time.Millisecond
	c.ReportsDir = "reports"
	c.NoCostSuppliers = []string{"Alejandro Cruz Sosa"}
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the client cannot start without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}
