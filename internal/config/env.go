package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDBPath    = "DEBTBOOK_DB_PATH"
	EnvRecordKey = "DEBTBOOK_RECORD_KEY"
	EnvLogLevel  = "DEBTBOOK_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the .env file at path (if any) and
// then from the process environment. The process environment is not modified.
func parseEnv(cfg *Config, path string) error {
	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		vars = fileVars
	}

	for _, key := range []string{EnvDBPath, EnvRecordKey, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			vars[key] = v
		}
	}

	overlay(&cfg.DBPath, vars[EnvDBPath])
	overlay(&cfg.RecordKey, vars[EnvRecordKey])
	overlay(&cfg.LogLevel, vars[EnvLogLevel])
	return nil
}
