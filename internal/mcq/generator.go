package mcq

import (
	"context"
	"fmt"
	"strings"

	"github.com/lahari/mcqgen/internal/llm"
)

// Generator runs the MCQ pipeline against an injected LLM provider.
// It holds no per-call state; one Generator is safe to reuse across runs.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces up to numQuestions unique questions from text.
//
// Short inputs (at most Config.TokenThreshold estimated tokens) are
// generated in a single call. Longer inputs are chunked; the requested
// count is distributed evenly across chunks, rounding up, and chunks are
// processed in order until the target is reached. Questions whose
// lowercase-trimmed prompt was already produced by an earlier chunk are
// dropped, so the result may fall short of numQuestions when chunks
// overlap heavily — that shortfall is reported through the returned
// set's length, not as an error.
//
// A failed model call or unparseable response aborts the run; no partial
// set is returned.
func (g *Generator) Generate(ctx context.Context, text string, numQuestions int) (QuestionSet, error) {
	if numQuestions < 1 {
		return nil, fmt.Errorf("question count must be at least 1, got %d", numQuestions)
	}

	if EstimateTokens(text) <= g.config.TokenThreshold {
		ctx = llm.WithPurpose(ctx, "mcq-gen")
		return g.generateFromText(ctx, text, numQuestions)
	}

	return g.generateChunked(ctx, text, numQuestions)
}

// generateChunked splits the text and accumulates deduplicated questions
// chunk by chunk until the target count is reached.
func (g *Generator) generateChunked(ctx context.Context, text string, numQuestions int) (QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "mcq-gen-chunk")

	chunks, err := ChunkText(text, g.config.MaxTokensPerCall, g.config.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	perChunk := (numQuestions + len(chunks) - 1) / len(chunks)
	if perChunk < 1 {
		perChunk = 1
	}

	var final QuestionSet
	seen := make(map[string]bool)

	for _, chunk := range chunks {
		if len(final) >= numQuestions {
			break
		}

		qs, err := g.generateFromText(ctx, chunk, perChunk)
		if err != nil {
			return nil, err
		}

		for _, q := range qs {
			prompt := strings.ToLower(strings.TrimSpace(q.Prompt))
			if seen[prompt] {
				continue
			}
			seen[prompt] = true

			final = append(final, q)
			if len(final) >= numQuestions {
				break
			}
		}
	}

	return final, nil
}

// generateFromText performs one model call and returns the normalized
// questions it produced.
func (g *Generator) generateFromText(ctx context.Context, text string, numQuestions int) (QuestionSet, error) {
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(text, numQuestions)},
		},
		MaxTokens:   g.config.responseBudget(numQuestions),
		Temperature: g.config.Temperature,
	}
	if g.config.StrictSchema {
		req.Schema = QuestionSetSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	raw, err := ExtractJSON(resp.Text())
	if err != nil {
		return nil, err
	}

	return NormalizeQuestions(raw), nil
}
