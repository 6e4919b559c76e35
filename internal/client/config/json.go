package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fletes/internal/flagx"
	"github.com/dmitrijs2005/fletes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	DatabasePath    string         `json:"database_path"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	SuccessDelay    timex.Duration `json:"success_delay"`
	ReportsDir      string         `json:"reports_dir"`
	NoCostSuppliers []string       `json:"no_cost_suppliers"`
	LogLevel        string         `json:"log_level"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Prefix        string         `json:"s3_prefix"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.ReportsDir, jc.ReportsDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SuccessDelay.Duration > 0 {
		cfg.SuccessDelay = jc.SuccessDelay.Duration
	}
	if jc.NoCostSuppliers != nil {
		cfg.NoCostSuppliers = jc.NoCostSuppliers
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
