package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the EmployWise admin CLI.
//
// Fields:
//   - BaseURL: root of the user-management REST API.
//   - DBPath: SQLite file that keeps the session token between runs.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the transport default.
//   - Verbose: enables debug logging to stderr.
type Config struct {
	BaseURL        string
	DBPath         string
	RequestTimeout time.Duration
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://reqres.in/api"
	c.DBPath = "employwise.db"
	c.RequestTimeout = 0
	c.Verbose = false
}

// LogLevel maps Verbose to a logging level name.
func (c *Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
