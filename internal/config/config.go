package config

import "github.com/dmitrijs2005/debtbook/internal/common"

// Config holds runtime settings for a debtbook instance.
type Config struct {
	// DBPath is the SQLite database file, or ":memory:".
	DBPath string

	// RecordKey is the key the dataset is persisted under.
	RecordKey string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "ledger.db"
	c.RecordKey = common.DefaultRecordKey
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file at jsonPath and
// the .env file at envPath (each skipped when its path is empty), then the
// process environment.
func LoadConfig(jsonPath, envPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
