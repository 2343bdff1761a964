package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvidersSorted(t *testing.T) {
	providers := Providers()

	assert.Contains(t, providers, ProviderGemini)
	assert.Contains(t, providers, ProviderOllama)
	for i := 1; i < len(providers); i++ {
		assert.Less(t, providers[i-1], providers[i])
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "claude"}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown LLM provider "claude"`)
	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "ollama")
}

func TestNewClientOllama(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultOllamaConfig(), "")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, "mistral", client.GetModel(TierLite))
}

func TestRegisterCustomProvider(t *testing.T) {
	fake := &OllamaClient{config: DefaultOllamaConfig()}
	Register("fake", func(context.Context, *Config, string) (Client, error) {
		return fake, nil
	})
	defer func() {
		registryMu.Lock()
		delete(registry, "fake")
		registryMu.Unlock()
	}()

	client, err := NewClient(context.Background(), &Config{Provider: "fake"}, "")
	require.NoError(t, err)
	assert.Same(t, fake, client)
}

func TestOllamaGenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"response": "  Golang  ", "done": true}`))
	}))
	defer server.Close()

	client, err := NewOllamaClient(&Config{
		Provider: ProviderOllama,
		Models:   map[ModelTier]string{TierLite: "mistral"},
		Endpoint: server.URL,
	})
	require.NoError(t, err)

	text, err := client.GenerateContent(context.Background(), "favorite language?", TierLite)
	require.NoError(t, err)
	assert.Equal(t, "Golang", text, "response should be trimmed")
}

func TestOllamaGenerateContentErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client, err := NewOllamaClient(&Config{
			Provider: ProviderOllama,
			Models:   map[ModelTier]string{TierLite: "mistral"},
			Endpoint: server.URL,
		})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), "p", TierLite)
		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response": "   "}`))
		}))
		defer server.Close()

		client, err := NewOllamaClient(&Config{
			Provider: ProviderOllama,
			Models:   map[ModelTier]string{TierLite: "mistral"},
			Endpoint: server.URL,
		})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), "p", TierLite)
		assert.ErrorContains(t, err, "empty response")
	})

	t.Run("no model for tier", func(t *testing.T) {
		client, err := NewOllamaClient(&Config{Provider: ProviderOllama, Models: map[ModelTier]string{}})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), "p", TierLite)
		assert.ErrorContains(t, err, "no model configured")
	})
}

func TestNewOllamaClientDefaultEndpoint(t *testing.T) {
	client, err := NewOllamaClient(&Config{Provider: ProviderOllama})
	require.NoError(t, err)
	assert.Equal(t, DefaultOllamaEndpoint, client.endpoint)
}
