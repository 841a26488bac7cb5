package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/employwise/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envAPIURL = "EMPLOYWISE_API_URL"
	envDBPath = "EMPLOYWISE_DB_PATH"
)

// parseEnv overlays Config with environment variables. A dotenv file named
// by -e/-env is loaded first (and must exist); otherwise ./.env is loaded if
// present. Variables already set in the process environment win over the
// file.
func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFileFlags(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envAPIURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(envDBPath); ok && v != "" {
		cfg.DBPath = v
	}
}
