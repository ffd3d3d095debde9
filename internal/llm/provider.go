package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the MCQ pipeline depends on for text
// generation. A Provider is constructed once and injected; it holds no
// mutable state beyond its underlying HTTP client.
type Provider interface {
	// Generate sends a prompt to the model and returns its completion.
	// The returned Content is raw model output: callers that asked for JSON
	// must not assume it is valid JSON unless a Schema was set on the
	// request, in which case the provider validates before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single completion request. Generation is
// request-only: no conversation state is carried between calls.
type Request struct {
	// System is the optional system prompt.
	System string

	// Messages is the message list. MCQ generation always sends exactly
	// one user message per call.
	Messages []Message

	// Schema, when set, asks the provider for structured output conforming
	// to the given JSON Schema and validates the response against it.
	// When nil the response is whatever text the model produced.
	Schema *Schema

	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0 - 1.0.
	Temperature float64
}

// Message is a single chat message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model when strict
// structured output is requested.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "mcq-set".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the completion text. json.RawMessage so that validated
	// structured output can be unmarshalled without re-encoding; for plain
	// text responses it is simply the raw bytes.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the completion as a string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
