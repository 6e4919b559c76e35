// Package config loads runtime configuration for the fletes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed FLETES_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the fletes API, e.g. https://api.example.com
//	-d string   path of the local SQLite file holding the session tokens
//	-t int      per-request timeout (seconds)
//	-o string   directory downloaded reports are written to
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "database_path": "fletes.db",
//	  "request_timeout": "15s",
//	  "success_delay": "500ms",
//	  "reports_dir": "reports",
//	  "no_cost_suppliers": ["Alejandro Cruz Sosa"],
//	  "log_level": "info",
//	  "s3_bucket": "fletes-reports"
//	}
//
// The API base URL has no default; Validate rejects a Config without one.
package config
