package mcq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lahari/mcqgen/internal/llm"
)

// questionSetJSON builds a canned model response whose prompts are
// prefixed so tests can tell which response a question came from.
func questionSetJSON(prefix string, n int) json.RawMessage {
	entries := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, fmt.Sprintf(`"%d": {
			"mcq": "%s question %d?",
			"options": {"a": "A", "b": "B", "c": "C", "d": "D"},
			"correct": ["a"],
			"explanation": "Because."
		}`, i, prefix, i))
	}
	return json.RawMessage("{" + strings.Join(entries, ",") + "}")
}

func TestGenerate_SingleCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionSetJSON("single", 3),
	})
	gen := NewGenerator(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), "short text", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("short input should make exactly 1 call, got %d", mock.CallCount())
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	for i := range qs {
		want := fmt.Sprintf("single question %d?", i+1)
		if qs[i].Prompt != want {
			t.Errorf("position %d: expected %q, got %q", i, want, qs[i].Prompt)
		}
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionSetJSON("shape", 1),
	})
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "some text", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "some text") {
		t.Error("message should embed the source text")
	}
	if req.MaxTokens != 512 {
		t.Errorf("1 question should use the 512-token floor, got %d", req.MaxTokens)
	}
	if req.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %v", req.Temperature)
	}
	if req.Schema != nil {
		t.Error("schema should be omitted unless strict mode is on")
	}
}

func TestGenerate_ResponseBudgetScales(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionSetJSON("budget", 5),
	})
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "text", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.Calls[0].MaxTokens; got != 1000 {
		t.Errorf("5 questions should budget 1000 tokens, got %d", got)
	}
}

func TestGenerate_StrictSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionSetJSON("strict", 1),
	})
	cfg := DefaultConfig()
	cfg.StrictSchema = true
	gen := NewGenerator(mock, cfg)

	if _, err := gen.Generate(context.Background(), "text", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].Schema != QuestionSetSchema {
		t.Error("strict mode should attach the question-set schema")
	}
}

func TestGenerate_Chunked(t *testing.T) {
	// Tiny budgets force the chunked path with small inputs. An 80-char
	// window with a 72-char step covers 135 chars in 2 chunks.
	cfg := DefaultConfig()
	cfg.TokenThreshold = 10
	cfg.MaxTokensPerCall = 20
	cfg.ChunkOverlap = 2

	text := strings.Repeat("unique content ", 9) // 135 chars => 2 chunks

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionSetJSON("chunk1", 2)},
		llm.MockResponse{Content: questionSetJSON("chunk2", 2)},
	)
	gen := NewGenerator(mock, cfg)

	qs, err := gen.Generate(context.Background(), text, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 chunk calls, got %d", mock.CallCount())
	}
	if len(qs) != 4 {
		t.Errorf("expected 4 questions, got %d", len(qs))
	}
}

func TestGenerate_ChunkedDedup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenThreshold = 10
	cfg.MaxTokensPerCall = 20
	cfg.ChunkOverlap = 2

	text := strings.Repeat("overlapping content ", 7) // 140 chars => 2 chunks

	// Both chunks return the same questions (case differs); duplicates
	// collapse and the run falls short of the target.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionSetJSON("same", 2)},
		llm.MockResponse{Content: json.RawMessage(`{
			"1": {"mcq": "SAME QUESTION 1?", "options": {"a": "A", "b": "B", "c": "C", "d": "D"}, "correct": ["a"], "explanation": "E"},
			"2": {"mcq": "fresh question?", "options": {"a": "A", "b": "B", "c": "C", "d": "D"}, "correct": ["b"], "explanation": "E"}
		}`)},
	)
	gen := NewGenerator(mock, cfg)

	qs, err := gen.Generate(context.Background(), text, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 unique questions, got %d", len(qs))
	}
	for _, q := range qs[:2] {
		if !strings.HasPrefix(q.Prompt, "same question") {
			t.Errorf("unexpected prompt: %q", q.Prompt)
		}
	}
	if qs[2].Prompt != "fresh question?" {
		t.Errorf("unexpected prompt: %q", qs[2].Prompt)
	}
}

func TestGenerate_ChunkFailureAborts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenThreshold = 10
	cfg.MaxTokensPerCall = 20
	cfg.ChunkOverlap = 2

	text := strings.Repeat("chunked content ", 9) // 2 chunks

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionSetJSON("ok", 2)},
		llm.MockResponse{Err: errors.New("provider down")},
	)
	gen := NewGenerator(mock, cfg)

	if _, err := gen.Generate(context.Background(), text, 4); err == nil {
		t.Fatal("a failed chunk should abort the run")
	}
}

func TestGenerate_UnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"not a question object"`),
	})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "text", 2)
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected ParseError, got %T", err)
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	gen := NewGenerator(llm.NewMockProvider(), DefaultConfig())
	if _, err := gen.Generate(context.Background(), "text", 0); err == nil {
		t.Error("expected error for zero questions")
	}
	if _, err := gen.Generate(context.Background(), "text", -3); err == nil {
		t.Error("expected error for negative questions")
	}
}
