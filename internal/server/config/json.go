package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/employwise/internal/flagx"
	"github.com/dmitrijs2005/employwise/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept strings such as "30m" or integer nanoseconds.
type JsonConfig struct {
	ListenAddr    string          `json:"listen_addr"`
	DatabaseDSN   string          `json:"database_dsn"`
	SecretKey     string          `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	PerPage       int             `json:"per_page"`
	SeedPassword  string          `json:"seed_password"`
}

func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	if jc.PerPage > 0 {
		cfg.PerPage = jc.PerPage
	}
	if jc.SeedPassword != "" {
		cfg.SeedPassword = jc.SeedPassword
	}
}
