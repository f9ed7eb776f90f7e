// Package provider resolves which LLM provider backs the agent runtime.
package provider

import (
	"os"

	"github.com/pkg/errors"
)

// Config holds the resolved provider configuration.
type Config struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Provider  string // "anthropic" or "openai"
}

// Resolve validates the provider settings. A missing API key falls back
// to the provider's conventional environment variable.
func Resolve(providerType, apiKey, baseURL, modelName string) (*Config, error) {
	if providerType == "" {
		providerType = "anthropic"
	}
	if providerType != "anthropic" && providerType != "openai" {
		return nil, errors.Errorf("unknown provider type: %s (supported: anthropic, openai)", providerType)
	}

	if apiKey == "" {
		switch providerType {
		case "anthropic":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, errors.Errorf("no API key configured for provider %s", providerType)
	}

	if modelName == "" {
		return nil, errors.New("no model configured")
	}

	return &Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		ModelName: modelName,
		Provider:  providerType,
	}, nil
}
