package mcq

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestRawCorrect_UnmarshalArray(t *testing.T) {
	var c RawCorrect
	if err := json.Unmarshal([]byte(`["a", "c"]`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsText {
		t.Error("array should not be flagged as text")
	}
	if !reflect.DeepEqual(c.Keys, []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", c.Keys)
	}
}

func TestRawCorrect_UnmarshalString(t *testing.T) {
	var c RawCorrect
	if err := json.Unmarshal([]byte(`"b"`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsText || c.Text != "b" {
		t.Errorf("expected text %q, got %+v", "b", c)
	}
}

func TestRawCorrect_UnmarshalNumber(t *testing.T) {
	var c RawCorrect
	if err := json.Unmarshal([]byte(`2`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsText || c.Text != "2" {
		t.Errorf("expected text %q, got %+v", "2", c)
	}
}

func TestQuestionSet_MarshalJSON(t *testing.T) {
	set := QuestionSet{
		{
			Prompt:      "First?",
			Options:     map[string]string{"a": "A", "b": "B"},
			Correct:     []string{"a"},
			Explanation: "E1",
		},
		{
			Prompt:      "Second?",
			Options:     map[string]string{"a": "A", "b": "B"},
			Correct:     []string{"b"},
			Explanation: "E2",
		},
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]RawQuestion
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	if decoded["1"].Prompt != "First?" || decoded["2"].Prompt != "Second?" {
		t.Errorf("keys out of order: %+v", decoded)
	}

	// Keys appear in sequential order in the encoded text.
	s := string(data)
	if strings.Index(s, `"1":`) > strings.Index(s, `"2":`) {
		t.Error("encoded keys not in order")
	}
}

func TestQuestionSet_Key(t *testing.T) {
	set := make(QuestionSet, 3)
	if set.Key(0) != "1" || set.Key(2) != "3" {
		t.Errorf("keys should be 1-based: %q %q", set.Key(0), set.Key(2))
	}
}

func TestQuestion_MultiCorrect(t *testing.T) {
	q := Question{Correct: []string{"a"}}
	if q.MultiCorrect() {
		t.Error("single key is not multi-correct")
	}
	q.Correct = []string{"a", "c"}
	if !q.MultiCorrect() {
		t.Error("two keys is multi-correct")
	}
}

func TestQuestion_OptionKeys(t *testing.T) {
	q := Question{Options: map[string]string{"d": "D", "a": "A", "c": "C", "b": "B"}}
	want := []string{"a", "b", "c", "d"}
	if got := q.OptionKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
