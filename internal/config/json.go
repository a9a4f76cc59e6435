package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DBPath    string `json:"db_path"`
	RecordKey string `json:"record_key"`
	LogLevel  string `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the JSON file at path.
// An empty path leaves cfg unchanged.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.RecordKey, jc.RecordKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
	return nil
}
