// Package config handles configuration for the development API server,
// including defaults, environment, JSON overlay and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the EmployWise API server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidity: lifetime of issued bearer tokens.
//   - PerPage: page size when the request does not name one.
//   - SeedPassword: password shared by the demo users seeded into an empty store.
type Config struct {
	ListenAddr    string
	DatabaseDSN   string
	SecretKey     string
	TokenValidity time.Duration
	PerPage       int
	SeedPassword  string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.PerPage = 6
	c.SeedPassword = "cityslicka"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
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
