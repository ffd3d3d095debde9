package llm

import (
	"context"
	"fmt"

	"github.com/lahari/mcqgen/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware chain: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "huggingface":
		base, err = NewHuggingFaceProvider(cfg.HuggingFace)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if eventRepo != nil {
		p = WithLogging(p, eventRepo)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from MCQGEN_* env vars, falling
// back to probing standard API key variables when no provider is
// explicitly selected.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
