package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "huggingface", "openai", "anthropic", "gemini", "mock"
	Provider string

	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig
	Anthropic   AnthropicConfig
	Gemini      GeminiConfig
	Retry       RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// HuggingFaceConfig holds HuggingFace Inference configuration. The HF
// router speaks the OpenAI chat completion protocol, so this provider
// reuses the OpenAI SDK with a different base URL.
type HuggingFaceConfig struct {
	Token   string
	Model   string // Default: "mistralai/Mistral-7B-Instruct-v0.2"
	BaseURL string // Default: "https://router.huggingface.co/v1"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. HuggingFace is
// the default backend; an MCQ run is a handful of cheap completions.
func DefaultConfig() Config {
	return Config{
		Provider: "huggingface",
		HuggingFace: HuggingFaceConfig{
			Model: "mistralai/Mistral-7B-Instruct-v0.2",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from MCQGEN_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MCQGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if t := os.Getenv("MCQGEN_HF_TOKEN"); t != "" {
		cfg.HuggingFace.Token = t
	}
	if m := os.Getenv("MCQGEN_HF_MODEL"); m != "" {
		cfg.HuggingFace.Model = m
	}
	if u := os.Getenv("MCQGEN_HF_BASE_URL"); u != "" {
		cfg.HuggingFace.BaseURL = u
	}

	if k := os.Getenv("MCQGEN_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("MCQGEN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("MCQGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("MCQGEN_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("MCQGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("MCQGEN_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("MCQGEN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (HuggingFace → OpenAI → Gemini → Anthropic) and returns a Config for
// the first backend whose key is found. Returns (Config{}, false) if
// none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if t := os.Getenv("HUGGINGFACEHUB_API_TOKEN"); t != "" {
		cfg.Provider = "huggingface"
		cfg.HuggingFace.Token = t
		return cfg, true
	}
	if t := os.Getenv("HF_TOKEN"); t != "" {
		cfg.Provider = "huggingface"
		cfg.HuggingFace.Token = t
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected backend has its credential set.
func (c Config) Validate() error {
	switch c.Provider {
	case "huggingface":
		if c.HuggingFace.Token == "" {
			return fmt.Errorf("MCQGEN_HF_TOKEN is required for the huggingface provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MCQGEN_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MCQGEN_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MCQGEN_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No credential needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
