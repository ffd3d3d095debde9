package mcq

// charsPerToken is the fixed character-to-token ratio used everywhere a
// token budget is converted to a character budget. ~4 chars per token is
// a safe estimate for English text.
const charsPerToken = 4

// EstimateTokens approximates the token count of text without a real
// tokenizer. Only monotonicity with text length matters; the estimate is
// used to decide whether chunking is needed and to size chunks.
func EstimateTokens(text string) int {
	n := (len(text) + charsPerToken - 1) / charsPerToken
	if n < 1 {
		return 1
	}
	return n
}
