package mcq

import "fmt"

// ChunkText splits text into overlapping slices sized to a token budget.
// Each chunk holds at most maxTokens*4 characters; consecutive chunks
// overlap by overlap*4 characters so context spanning a boundary appears
// in both. The chunks concatenate (overlap removed) to exactly the input.
//
// The overlap must be strictly smaller than the budget, otherwise the
// window never advances; that misconfiguration is rejected here rather
// than looping forever.
func ChunkText(text string, maxTokens, overlap int) ([]string, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("chunk budget must be positive, got %d tokens", maxTokens)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must be non-negative, got %d tokens", overlap)
	}
	if overlap >= maxTokens {
		return nil, fmt.Errorf("chunk overlap (%d tokens) must be smaller than the chunk budget (%d tokens)", overlap, maxTokens)
	}

	maxChars := maxTokens * charsPerToken
	step := maxChars - overlap*charsPerToken

	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks, nil
}
