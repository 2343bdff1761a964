package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ollamaRequest is the POST body for the Ollama generate API.
type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ollamaResponse holds the fields of the Ollama reply we care about.
type ollamaResponse struct {
	Response string `json:"response"`
}

// OllamaClient implements Client against a local Ollama-compatible HTTP
// endpoint. No API key is required.
type OllamaClient struct {
	endpoint   string
	config     *Config
	httpClient *http.Client
}

// NewOllamaClient creates a client for the configured endpoint, falling
// back to the default local endpoint when none is set.
func NewOllamaClient(config *Config) (*OllamaClient, error) {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultOllamaEndpoint
	}

	return &OllamaClient{
		endpoint: endpoint,
		config:   config,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // local models can be slow to first token
		},
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *OllamaClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body, err := json.Marshal(ollamaRequest{
		Model:  modelName,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse ollama response: %w", err)
	}

	text := strings.TrimSpace(parsed.Response)
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", modelName)
	}
	return text, nil
}

// GetModel returns the model name for a tier
func (c *OllamaClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *OllamaClient) Close() error {
	return nil
}
