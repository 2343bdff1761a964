// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/form-autofill/internal/forms"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Target
	URL          string `json:"url,omitempty" validate:"omitempty,url"` // Page with the form to fill
	FormSelector string `json:"form_selector,omitempty"`                // CSS selector scoping element discovery (default: first form)

	// Inputs
	Profile string `json:"profile,omitempty"` // Path to the known-data profile JSON
	Resume  string `json:"resume,omitempty"`  // Path to the resume document (PDF or text)

	// Matching
	MatchThreshold int `json:"match_threshold,omitempty" validate:"min=0,max=100"` // Fuzzy similarity threshold (0-100)

	// LLM
	Provider       string `json:"provider,omitempty" validate:"omitempty,oneof=gemini ollama"` // LLM provider identifier
	Model          string `json:"model,omitempty"`                                             // Model override for the lite tier
	APIKey         string `json:"api_key,omitempty"`                                           // Gemini API key
	OllamaEndpoint string `json:"ollama_endpoint,omitempty" validate:"omitempty,url"`          // Local Ollama endpoint

	// Browser
	BrowserTimeoutSeconds int  `json:"browser_timeout_seconds,omitempty" validate:"min=0"` // Per-action browser timeout
	Headed                bool `json:"headed,omitempty"`                                   // Run the browser with a visible window

	// Behavior
	DryRun  bool `json:"dry_run,omitempty"` // Resolve values without touching the page
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// validate is shared; validator instances cache struct metadata.
var structValidator = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are handled after CLI flag
// merging, where a missing value may still arrive from a flag.
func (c *Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %q fails rule %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// Threshold returns the configured fuzzy threshold, defaulting when unset.
func (c *Config) Threshold() int {
	if c.MatchThreshold == 0 {
		return forms.DefaultThreshold
	}
	return c.MatchThreshold
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.FormSelector == "" {
		result.FormSelector = defaults.FormSelector
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.MatchThreshold == 0 {
		result.MatchThreshold = defaults.MatchThreshold
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OllamaEndpoint == "" {
		result.OllamaEndpoint = defaults.OllamaEndpoint
	}
	if result.BrowserTimeoutSeconds == 0 {
		result.BrowserTimeoutSeconds = defaults.BrowserTimeoutSeconds
	}
	if !result.Headed {
		result.Headed = defaults.Headed
	}
	if !result.DryRun {
		result.DryRun = defaults.DryRun
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
