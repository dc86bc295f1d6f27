package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name at the books root.
const FileName = "tallybook.yaml"

// Config represents the top-level tallybook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Storage  StorageConfig  `yaml:"storage"`
	Import   ImportConfig   `yaml:"import"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// StorageConfig selects the journal backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`        // "csv" or "sqlite"
	Path    string `yaml:"path,omitempty"` // sqlite database path, relative to books root
}

// ImportConfig maps bank statement lines onto the chart of accounts.
type ImportConfig struct {
	BankAccountID    string `yaml:"bank_account_id"`
	IncomeAccountID  string `yaml:"income_account_id"`
	ExpenseAccountID string `yaml:"expense_account_id"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tallybook.yaml file from disk. A .env file in the working
// directory is loaded first, and TALLYBOOK_STORAGE_BACKEND /
// TALLYBOOK_STORAGE_PATH override the file's storage section.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if backend := os.Getenv("TALLYBOOK_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("TALLYBOOK_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}

	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books directory.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Storage: StorageConfig{
			Backend: "csv",
		},
		Import: ImportConfig{
			BankAccountID:    "1010", // Bank
			IncomeAccountID:  "4000", // Service Revenue
			ExpenseAccountID: "5020", // Utilities; edit to taste per statement
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tallybook",
			AuthorEmail: "books@tallybook.dev",
		},
	}
}
