package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the optional JSON config file for the CLI. Every field may be
// omitted; flags and environment variables win over file values.
type Config struct {
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	APIKey     string `json:"api_key,omitempty"`     // Gemini key for optional insights
	TopMatches int    `json:"top_matches,omitempty"` // matches returned per request
	UseBrowser bool   `json:"use_browser,omitempty"` // headless browser for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`

	FindWorkToken string `json:"findwork_token,omitempty"`
}

// LoadConfig reads and parses a JSON config file. Relative paths resolve
// against the working directory.
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

// Validate checks value ranges. Required-field checks happen after merging,
// at the CLI layer, since any single source may legitimately omit a field.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.TopMatches < 0 {
		return fmt.Errorf("config error: 'top_matches' must be non-negative")
	}
	return nil
}

// MergeWithDefaults fills zero-valued fields from defaults, keeping any value
// already set on c. Bools are never merged: an unset flag is indistinguishable
// from false, so bool flags always win as given.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	merged := *c

	if merged.DatabaseURL == "" {
		merged.DatabaseURL = defaults.DatabaseURL
	}
	if merged.APIKey == "" {
		merged.APIKey = defaults.APIKey
	}
	if merged.FindWorkToken == "" {
		merged.FindWorkToken = defaults.FindWorkToken
	}
	if merged.Port == 0 {
		merged.Port = defaults.Port
	}
	if merged.TopMatches == 0 {
		merged.TopMatches = defaults.TopMatches
	}

	return merged
}
