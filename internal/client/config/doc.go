// Package config loads runtime configuration for the AutoFinance CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: AUTOFINANCE_API_URL replaces the default backend URL.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path of the local session database
//	-l string   log level: debug, info, warn, error
//	-e          keep the session in memory only
//
// # JSON schema
//
// Omitted fields keep the value from the earlier layers:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "storage_path": "autofinance.db",
//	  "log_level": "info",
//	  "ephemeral": false
//	}
package config
