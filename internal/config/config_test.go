package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/form-autofill/internal/forms"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"url": "https://jobs.example.com/apply",
		"match_threshold": 85,
		"provider": "ollama",
		"dry_run": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com/apply", cfg.URL)
	assert.Equal(t, 85, cfg.MatchThreshold)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "config path is empty")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeConfig(t, `{"url": `)
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "failed to parse config JSON")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config is valid", Config{}, ""},
		{"valid full config", Config{
			URL:                   "https://jobs.example.com/apply",
			MatchThreshold:        80,
			Provider:              "gemini",
			OllamaEndpoint:        "http://localhost:11434/api/generate",
			BrowserTimeoutSeconds: 45,
		}, ""},
		{"bad URL", Config{URL: "not a url"}, `field "URL"`},
		{"threshold above 100", Config{MatchThreshold: 150}, `field "MatchThreshold"`},
		{"unknown provider", Config{Provider: "openai"}, `field "Provider"`},
		{"negative timeout", Config{BrowserTimeoutSeconds: -1}, `field "BrowserTimeoutSeconds"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FilePathsMustExist(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(existing, []byte(`{}`), 0o600))

	cfg := Config{Profile: existing, Resume: filepath.Join(dir, "absent.pdf")}
	assert.ErrorContains(t, cfg.Validate(), "resume file not found")

	cfg.Resume = ""
	assert.NoError(t, cfg.Validate())

	cfg.Profile = filepath.Join(dir, "absent.json")
	assert.ErrorContains(t, cfg.Validate(), "profile file not found")
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, forms.DefaultThreshold, (&Config{}).Threshold())
	assert.Equal(t, 65, (&Config{MatchThreshold: 65}).Threshold())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{URL: "https://a.example.com", MatchThreshold: 90}
	defaults := Config{
		URL:            "https://b.example.com",
		Profile:        "profile.json",
		MatchThreshold: 70,
		Provider:       "ollama",
		Verbose:        true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://a.example.com", merged.URL, "set fields win over defaults")
	assert.Equal(t, 90, merged.MatchThreshold)
	assert.Equal(t, "profile.json", merged.Profile, "empty fields take defaults")
	assert.Equal(t, "ollama", merged.Provider)
	assert.True(t, merged.Verbose)
}
