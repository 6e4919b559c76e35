package config

import (
	"os"
	"strings"
	"time"
)

const envPrefix = "FLETES_"

// parseEnv overlays cfg with FLETES_* variables. Empty variables and
// unparsable durations are ignored. FLETES_NO_COST_SUPPLIERS is a
// comma-separated list.
func parseEnv(cfg *Config) {
	cfg.APIBaseURL = getenv("API_BASE_URL", cfg.APIBaseURL)
	cfg.DatabasePath = getenv("DB_PATH", cfg.DatabasePath)
	cfg.ReportsDir = getenv("REPORTS_DIR", cfg.ReportsDir)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeout = getenvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.SuccessDelay = getenvDuration("SUCCESS_DELAY", cfg.SuccessDelay)

	cfg.S3Bucket = getenv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Prefix = getenv("S3_PREFIX", cfg.S3Prefix)
	cfg.S3Region = getenv("S3_REGION", cfg.S3Region)
	cfg.S3BaseEndpoint = getenv("S3_ENDPOINT", cfg.S3BaseEndpoint)
	cfg.S3AccessKey = getenv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getenv("S3_SECRET_KEY", cfg.S3SecretKey)

	if v := getenv("NO_COST_SUPPLIERS", ""); v != "" {
		var names []string
		for _, n := range strings.Split(v, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		cfg.NoCostSuppliers = names
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(envPrefix + k)); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
