package config

import "os"

// APIURLEnv names the environment variable that overrides the default
// backend URL.
const APIURLEnv = "AUTOFINANCE_API_URL"

// Config holds runtime settings for the AutoFinance CLI.
type Config struct {
	// ServerURL is the backend base URL, e.g. "http://localhost:8000".
	ServerURL string
	// StoragePath is the SQLite file that keeps the session between runs.
	StoragePath string
	LogLevel    string
	// Ephemeral keeps the session in memory; nothing is written to disk.
	Ephemeral bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.StoragePath = "autofinance.db"
	c.LogLevel = "info"
	c.Ephemeral = false
}

// parseEnv applies environment overrides.
func parseEnv(c *Config) {
	if v := os.Getenv(APIURLEnv); v != "" {
		c.ServerURL = v
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
