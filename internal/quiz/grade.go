package quiz

import "github.com/lahari/mcqgen/internal/mcq"

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	Index       int
	Correct     bool
	ChosenKeys  []string
	CorrectKeys []string
}

// Result summarizes a graded session.
type Result struct {
	Score     int
	Total     int
	Questions []QuestionResult
}

// Grade scores the session. The correct key set is re-derived through
// the answer resolver rather than trusted from the stored question, and
// a question counts as correct only when the chosen set matches it
// exactly — selecting a subset or superset of a multi-correct answer
// scores zero for that question.
func (s *Session) Grade() Result {
	res := Result{Total: len(s.Questions)}

	for i, q := range s.Questions {
		correct := normalizeKeySet(mcq.ResolveCorrect(q))
		chosen := s.answers[i]

		qr := QuestionResult{
			Index:       i,
			ChosenKeys:  chosen,
			CorrectKeys: correct,
			Correct:     keySetsEqual(chosen, correct),
		}
		if qr.Correct {
			res.Score++
		}
		res.Questions = append(res.Questions, qr)
	}

	return res
}

// keySetsEqual compares two normalized key sets. Empty sets never
// match: an unanswered question is wrong, not vacuously right.
func keySetsEqual(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
