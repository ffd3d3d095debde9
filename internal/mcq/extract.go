package mcq

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError indicates that model output could not be coerced into JSON
// after every fallback attempt. Callers should surface a generation
// failure rather than returning an empty set.
type ParseError struct {
	// Raw is a truncated copy of the text that failed to parse.
	Raw string
}

func (e *ParseError) Error() string {
	return "no valid JSON found"
}

var (
	// trailingCommaRE matches a comma followed by a closing brace or
	// bracket, a common model artifact that encoding/json rejects.
	trailingCommaRE = regexp.MustCompile(`,\s*([}\]])`)

	// unsafeCharsRE matches runs of characters outside printable ASCII,
	// newline and tab. Smart quotes, stray control bytes and the like all
	// collapse to a single space.
	unsafeCharsRE = regexp.MustCompile(`[^\x20-\x7E\n\t]+`)
)

// ExtractJSON recovers a question mapping from arbitrary model output.
// Attempts, in order, first success wins:
//
//  1. parse the trimmed text directly
//  2. parse the outermost {...} slice, which drops markdown fences and
//     surrounding prose
//  3. parse after cleanup: trailing commas stripped, characters outside
//     the ASCII whitelist replaced with a space
//  4. parse after additionally swapping single quotes for double quotes
//
// Quote swapping is last because it corrupts legitimate apostrophes in
// option text; it is a last resort, not a first try.
func ExtractJSON(text string) (map[string]RawQuestion, error) {
	trimmed := strings.TrimSpace(text)

	if qs, err := parseQuestions(trimmed); err == nil {
		return qs, nil
	}

	sliced := sliceObject(trimmed)
	if sliced != trimmed {
		if qs, err := parseQuestions(sliced); err == nil {
			return qs, nil
		}
	}

	cleaned := cleanJSONText(sliced)
	if qs, err := parseQuestions(cleaned); err == nil {
		return qs, nil
	}

	requoted := strings.ReplaceAll(cleaned, "'", `"`)
	if qs, err := parseQuestions(requoted); err == nil {
		return qs, nil
	}

	return nil, &ParseError{Raw: truncate(trimmed, 500)}
}

func parseQuestions(text string) (map[string]RawQuestion, error) {
	var qs map[string]RawQuestion
	if err := json.Unmarshal([]byte(text), &qs); err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("empty question object")
	}
	return qs, nil
}

// sliceObject returns the substring from the first '{' to the last '}',
// or the input unchanged when no such pair exists.
func sliceObject(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}

// cleanJSONText strips common artifacts in model JSON output.
func cleanJSONText(text string) string {
	text = trailingCommaRE.ReplaceAllString(text, "$1")
	text = unsafeCharsRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
