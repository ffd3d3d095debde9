package quiz

import (
	"reflect"
	"testing"

	"github.com/lahari/mcqgen/internal/mcq"
)

func testQuestions() mcq.QuestionSet {
	return mcq.QuestionSet{
		{
			Prompt:  "Single answer?",
			Options: map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"},
			Correct: []string{"b"},
		},
		{
			Prompt:  "Multi answer?",
			Options: map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"},
			Correct: []string{"a", "c"},
		},
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(testQuestions())
	if s.ID == "" {
		t.Error("session should get an ID")
	}
	if len(s.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(s.Questions))
	}
	if s.Complete() {
		t.Error("fresh session should not be complete")
	}
}

func TestSession_SetAnswer(t *testing.T) {
	s := NewSession(testQuestions())

	s.SetAnswer(0, []string{"b"})
	if !reflect.DeepEqual(s.Answer(0), []string{"b"}) {
		t.Errorf("unexpected answer: %v", s.Answer(0))
	}

	// Re-answering replaces.
	s.SetAnswer(0, []string{"c"})
	if !reflect.DeepEqual(s.Answer(0), []string{"c"}) {
		t.Errorf("unexpected answer after replace: %v", s.Answer(0))
	}

	// Duplicates collapse and keys sort.
	s.SetAnswer(1, []string{"c", "a", "c"})
	if !reflect.DeepEqual(s.Answer(1), []string{"a", "c"}) {
		t.Errorf("unexpected normalized answer: %v", s.Answer(1))
	}

	// Empty clears.
	s.SetAnswer(0, nil)
	if s.Answer(0) != nil {
		t.Errorf("expected cleared answer, got %v", s.Answer(0))
	}
}

func TestSession_Complete(t *testing.T) {
	s := NewSession(testQuestions())
	s.SetAnswer(0, []string{"b"})
	if s.Complete() {
		t.Error("one unanswered question left")
	}
	s.SetAnswer(1, []string{"a"})
	if !s.Complete() {
		t.Error("all questions answered")
	}
}

func TestGrade(t *testing.T) {
	s := NewSession(testQuestions())
	s.SetAnswer(0, []string{"b"})
	s.SetAnswer(1, []string{"c", "a"})

	res := s.Grade()
	if res.Score != 2 || res.Total != 2 {
		t.Errorf("expected 2/2, got %d/%d", res.Score, res.Total)
	}
	for _, qr := range res.Questions {
		if !qr.Correct {
			t.Errorf("question %d graded wrong", qr.Index)
		}
	}
}

func TestGrade_ExactSetRequired(t *testing.T) {
	s := NewSession(testQuestions())
	s.SetAnswer(0, []string{"b"})
	// Subset of the multi-correct answer.
	s.SetAnswer(1, []string{"a"})

	res := s.Grade()
	if res.Score != 1 {
		t.Errorf("expected score 1, got %d", res.Score)
	}
	if res.Questions[1].Correct {
		t.Error("subset of a multi-correct answer should score zero")
	}

	// Superset is also wrong.
	s.SetAnswer(1, []string{"a", "c", "d"})
	if s.Grade().Questions[1].Correct {
		t.Error("superset of a multi-correct answer should score zero")
	}
}

func TestGrade_Unanswered(t *testing.T) {
	s := NewSession(testQuestions())
	res := s.Grade()
	if res.Score != 0 {
		t.Errorf("unanswered session should score 0, got %d", res.Score)
	}
}

func TestGrade_ResolvesRawCorrect(t *testing.T) {
	// A hand-built question whose Correct holds option text instead of
	// keys still grades against the resolved key.
	s := NewSession(mcq.QuestionSet{{
		Prompt:  "Q?",
		Options: map[string]string{"a": "Red", "b": "Blue"},
		Correct: []string{"Blue"},
	}})
	s.SetAnswer(0, []string{"b"})

	res := s.Grade()
	if res.Score != 1 {
		t.Errorf("expected score 1, got %d", res.Score)
	}
	if !reflect.DeepEqual(res.Questions[0].CorrectKeys, []string{"b"}) {
		t.Errorf("unexpected correct keys: %v", res.Questions[0].CorrectKeys)
	}
}
