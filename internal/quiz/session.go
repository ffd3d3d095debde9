// Package quiz holds the in-memory state of one quiz attempt: the
// generated question set, the user's answers and the grading logic.
// A session is owned by a single user flow; it is created fresh per
// generation run and discarded when a new quiz starts, so no locking
// is needed.
package quiz

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lahari/mcqgen/internal/mcq"
)

// Session is one quiz attempt over a generated question set.
type Session struct {
	ID        string
	Questions mcq.QuestionSet

	// answers maps question index to the chosen option keys. A
	// single-correct question has exactly one key; a multi-correct
	// question has one or more.
	answers map[int][]string
}

// NewSession creates a Session over the given questions.
func NewSession(questions mcq.QuestionSet) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: questions,
		answers:   make(map[int][]string),
	}
}

// SetAnswer records the chosen option keys for the question at index i.
// An empty key set clears the answer.
func (s *Session) SetAnswer(i int, keys []string) {
	if len(keys) == 0 {
		delete(s.answers, i)
		return
	}
	s.answers[i] = normalizeKeySet(keys)
}

// Answer returns the recorded keys for question i, or nil.
func (s *Session) Answer(i int) []string {
	return s.answers[i]
}

// Complete reports whether every question has at least one chosen key.
func (s *Session) Complete() bool {
	for i := range s.Questions {
		if len(s.answers[i]) == 0 {
			return false
		}
	}
	return true
}

// normalizeKeySet sorts and deduplicates option keys so answer sets
// compare element-wise.
func normalizeKeySet(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
