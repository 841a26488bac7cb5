package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/employwise/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envListenAddr  = "EMPLOYWISE_SERVER_ADDR"
	envDatabaseDSN = "EMPLOYWISE_DATABASE_DSN"
	envSecretKey   = "EMPLOYWISE_SECRET_KEY"
)

func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFileFlags(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envListenAddr); ok && v != "" {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok && v != "" {
		cfg.SecretKey = v
	}
}
