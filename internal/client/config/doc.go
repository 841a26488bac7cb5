// Package config loads runtime configuration for the EmployWise admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: EMPLOYWISE_API_URL, EMPLOYWISE_DB_PATH, optionally read
//     from a dotenv file given by -e or -env (./.env otherwise).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the user API (default https://reqres.in/api)
//	-d string   local SQLite database path (default employwise.db)
//	-t int      request timeout in seconds (default 0, transport default)
//	-v          verbose logging
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080/api",
//	  "db_path": "employwise.db",
//	  "request_timeout": "5s",
//	  "verbose": true
//	}
package config
