package mcq

// Config controls the generation pipeline.
type Config struct {
	// TokenThreshold is the estimated token count above which input text
	// is chunked instead of generated in a single call.
	TokenThreshold int

	// MaxTokensPerCall is the per-chunk input token budget.
	MaxTokensPerCall int

	// ChunkOverlap is the overlap between consecutive chunks, in tokens,
	// preserving context across chunk boundaries.
	ChunkOverlap int

	// Temperature is the sampling temperature for generation calls.
	// Low by default: the output must be parseable JSON.
	Temperature float64

	// TokensPerQuestion sizes the response budget per requested question.
	TokensPerQuestion int

	// MinResponseTokens is the floor on the response budget.
	MinResponseTokens int

	// StrictSchema asks the provider for schema-validated structured
	// output instead of free text. The tolerant extractor still runs, so
	// enabling this only narrows what the model can send back.
	StrictSchema bool
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		TokenThreshold:    6000,
		MaxTokensPerCall:  4000,
		ChunkOverlap:      200,
		Temperature:       0.3,
		TokensPerQuestion: 200,
		MinResponseTokens: 512,
	}
}

// responseBudget computes the response token budget for one call.
func (c Config) responseBudget(numQuestions int) int {
	budget := numQuestions * c.TokensPerQuestion
	if budget < c.MinResponseTokens {
		return c.MinResponseTokens
	}
	return budget
}
