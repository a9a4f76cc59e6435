package debtbook

import (
	"github.com/dmitrijs2005/debtbook/internal/config"
	"github.com/dmitrijs2005/debtbook/internal/models"
)

// Re-export the data model so callers don't have to reach into internal packages.

type (
	Dataset      = models.Dataset
	Person       = models.Person
	Entry        = models.Entry
	EntryInput   = models.EntryInput
	Kind         = models.Kind
	Totals       = models.Totals
	PersonTotals = models.PersonTotals
	Summary      = models.Summary
	Status       = models.Status
)

const (
	KindDebt   = models.KindDebt
	KindCredit = models.KindCredit

	StatusTheyOwe   = models.StatusTheyOwe
	StatusOwnerOwes = models.StatusOwnerOwes
	StatusSettled   = models.StatusSettled
)

// Config holds the settings Open needs.
type Config = config.Config

// LoadConfig reads defaults, then the JSON file at jsonPath and the .env file
// at envPath when they are non-empty, then DEBTBOOK_* environment variables.
func LoadConfig(jsonPath, envPath string) (*Config, error) {
	return config.LoadConfig(jsonPath, envPath)
}

// DefaultConfig returns a Config with only the defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}
