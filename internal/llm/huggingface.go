package llm

import "fmt"

const defaultHuggingFaceBaseURL = "https://router.huggingface.co/v1"

// HuggingFaceProvider targets the HuggingFace inference router. The router
// exposes an OpenAI-compatible chat completion API, so the underlying SDK
// is reused with a different base URL and token.
type HuggingFaceProvider struct {
	*OpenAIProvider
}

// NewHuggingFaceProvider creates a provider targeting HuggingFace inference.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) (*HuggingFaceProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("huggingface token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.Token,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &HuggingFaceProvider{OpenAIProvider: inner}, nil
}
