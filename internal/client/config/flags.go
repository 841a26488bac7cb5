package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/employwise/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the user API
//	-d string   path of the local SQLite database
//	-t int      request timeout in seconds (0 = transport default)
//	-v          verbose logging
//
// Only the flags above are considered, using flagx.FilterArgs, so bootstrap
// flags such as -c and -e do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the user API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
