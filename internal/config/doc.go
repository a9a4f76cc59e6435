// Package config loads runtime configuration for the debtbook library.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson).
//  3. Optional .env file, read with godotenv (see parseEnv).
//  4. Process environment variables, which override everything else.
//
// Later sources take precedence over earlier ones; empty values never
// override.
//
// # JSON schema
//
//	{
//	  "db_path":    "data/ledger.db",
//	  "record_key": "people-data",
//	  "log_level":  "info"
//	}
//
// # Environment
//
//	DEBTBOOK_DB_PATH     path of the SQLite database file, or ":memory:"
//	DEBTBOOK_RECORD_KEY  key the dataset is stored under
//	DEBTBOOK_LOG_LEVEL   debug, info, warn, error
//
// The library has no process entry point, so there are no command-line flags.
package config
