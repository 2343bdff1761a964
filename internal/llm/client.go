package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// Factory constructs a Client for one provider from configuration.
type Factory func(ctx context.Context, config *Config, apiKey string) (Client, error)

var (
	registryMu sync.RWMutex
	registry   = map[Provider]Factory{}
)

func init() {
	Register(ProviderGemini, func(ctx context.Context, config *Config, apiKey string) (Client, error) {
		return NewGeminiClient(ctx, config, apiKey)
	})
	Register(ProviderOllama, func(_ context.Context, config *Config, _ string) (Client, error) {
		return NewOllamaClient(config)
	})
}

// Register adds a provider factory to the registry. Registering an already
// registered provider replaces its factory.
func Register(provider Provider, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[provider] = factory
}

// Providers returns the registered provider identifiers, sorted.
func Providers() []Provider {
	registryMu.RLock()
	defer registryMu.RUnlock()
	providers := make([]Provider, 0, len(registry))
	for p := range registry {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}

// NewClient creates a new LLM client for the configured provider.
// An unregistered provider is an error naming the known providers.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	registryMu.RLock()
	factory, ok := registry[config.Provider]
	registryMu.RUnlock()
	if !ok {
		names := make([]string, 0, len(Providers()))
		for _, p := range Providers() {
			names = append(names, string(p))
		}
		return nil, fmt.Errorf("unknown LLM provider %q (registered: %s)",
			config.Provider, strings.Join(names, ", "))
	}

	return factory(ctx, config, apiKey)
}
