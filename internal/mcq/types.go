// Package mcq turns plain text into multiple-choice questions using an
// injected LLM provider. It owns the token-budget chunking, the tolerant
// parsing of model output, the answer-key normalization and the
// cross-chunk deduplication.
package mcq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Question is a normalized multiple-choice question. Option keys are
// canonically lowercase ("a".."d"); Correct holds option keys only and is
// never empty after normalization unless Options itself is empty.
type Question struct {
	// Prompt is the question text. Wire name "mcq" matches the response
	// format the model is instructed to produce.
	Prompt string `json:"mcq"`

	// Options maps option key to option text. The prompt contract asks
	// for exactly 4 entries; this is model-supplied and not independently
	// verified, so consumers must treat it as untrusted.
	Options map[string]string `json:"options"`

	// Correct is the set of correct option keys.
	Correct []string `json:"correct"`

	// Explanation is the model's explanation of the correct answer(s).
	Explanation string `json:"explanation"`

	// Fallback is set when no raw correct entry resolved to an option and
	// the first option key was substituted. Surfaced for observability,
	// not serialized.
	Fallback bool `json:"-"`
}

// MultiCorrect reports whether the question has more than one correct key.
func (q Question) MultiCorrect() bool {
	return len(q.Correct) > 1
}

// OptionKeys returns the question's option keys in canonical order.
func (q Question) OptionKeys() []string {
	return sortedKeys(q.Options)
}

// QuestionSet is an ordered set of questions. Position i corresponds to
// the 1-based string key strconv.Itoa(i+1) in the transport encoding.
type QuestionSet []Question

// Key returns the transport key for position i.
func (s QuestionSet) Key(i int) string {
	return strconv.Itoa(i + 1)
}

// MarshalJSON encodes the set as an object keyed "1".."n" in order,
// matching the shape the pipeline asks the model for.
func (s QuestionSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, q := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", s.Key(i))
		qb, err := json.Marshal(q)
		if err != nil {
			return nil, err
		}
		buf.Write(qb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RawQuestion is a question as parsed from model output, before
// normalization. Its Correct field tolerates the shapes models actually
// produce; the ambiguity does not leak past NormalizeQuestions.
type RawQuestion struct {
	Prompt      string            `json:"mcq"`
	Options     map[string]string `json:"options"`
	Correct     RawCorrect        `json:"correct"`
	Explanation string            `json:"explanation"`
}

// RawCorrect is the tagged union of shapes the "correct" field arrives
// in: a JSON array of strings (the requested shape) or a bare string
// (a single key, comma-separated keys, or option text).
type RawCorrect struct {
	Keys   []string
	Text   string
	IsText bool
}

// UnmarshalJSON accepts a string, an array of strings, or a scalar that
// can be rendered as a string.
func (c *RawCorrect) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err == nil {
		*c = RawCorrect{Keys: keys}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = RawCorrect{Text: text, IsText: true}
		return nil
	}

	// Last resort: a number or boolean becomes its textual form.
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("correct field: %w", err)
	}
	*c = RawCorrect{Text: fmt.Sprint(v), IsText: true}
	return nil
}

// sortedKeys returns map keys in lexicographic order. For the contract
// keys "a".."d" this matches the order the model listed them in.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedQuestionIDs orders raw response keys numerically when possible
// ("2" before "10"), lexicographically otherwise.
func sortedQuestionIDs(m map[string]RawQuestion) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return ids[i] < ids[j]
	})
	return ids
}
