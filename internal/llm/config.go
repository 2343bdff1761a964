// Package llm provides centralized LLM configuration and client abstractions.
// Providers are looked up through a registry keyed by provider identifier,
// each entry implementing the shared Client contract.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: single-field answers, option selection
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: longer free-text answers
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: multi-paragraph responses
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOllama is a local Ollama-compatible HTTP endpoint
	ProviderOllama Provider = "ollama"
)

// DefaultOllamaEndpoint is the default local Ollama API endpoint.
const DefaultOllamaEndpoint = "http://localhost:11434/api/generate"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// Endpoint is the HTTP endpoint for local providers; unused by Gemini.
	Endpoint string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultOllamaConfig returns the default configuration for a local Ollama
// endpoint. A single local model serves every tier.
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Models: map[ModelTier]string{
			TierLite:     "mistral",
			TierStandard: "mistral",
			TierAdvanced: "mistral",
		},
		Endpoint: DefaultOllamaEndpoint,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
		Endpoint: c.Endpoint,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
