// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a taxonomy JSON file (built-in tables when empty)
	Profile  string `json:"profile,omitempty"`  // Path to a profile JSON file
	Jobs     string `json:"jobs,omitempty"`     // Path to a job-postings JSON file

	// Matching behavior
	MinConfidence float64 `json:"min_confidence,omitempty"` // Extraction confidence floor (0.0-1.0)
	MinScore      float64 `json:"min_score,omitempty"`      // Batch match score floor (0-100)
	TopN          int     `json:"top_n,omitempty"`          // Batch result truncation, 0 = unlimited

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL, empty = no persistence

	// LLM enrichment
	APIKey    string  `json:"api_key,omitempty"`    // Gemini API key, empty = enrichment disabled
	Model     string  `json:"model,omitempty"`      // Gemini model name
	BudgetUSD float64 `json:"budget_usd,omitempty"` // LLM spend budget, 0 = unlimited

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job pages
	Verbose    bool `json:"verbose,omitempty"`     // Debug-level logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("config error: 'min_confidence' must be between 0 and 1")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.BudgetUSD < 0 {
		return fmt.Errorf("config error: 'budget_usd' must be non-negative")
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This applies config-file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.BudgetUSD == 0 {
		result.BudgetUSD = defaults.BudgetUSD
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	if result.MinConfidence == 0 {
		if defaults.MinConfidence > 0 {
			result.MinConfidence = defaults.MinConfidence
		} else {
			result.MinConfidence = 0.5 // default extraction floor
		}
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags always
	// win for bools.

	return result
}
