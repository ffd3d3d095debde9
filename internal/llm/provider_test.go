package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	first, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text() != `{"a":1}` {
		t.Errorf("unexpected first response: %s", first.Text())
	}
	if first.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage: %+v", first.Usage)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Text() != `{"b":2}` {
		t.Errorf("unexpected second response: %s", second.Text())
	}
}

func TestMockProvider_ExhaustedQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error on empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	req := Request{
		Messages:    []Message{{Role: RoleUser, Content: "hello"}},
		MaxTokens:   512,
		Temperature: 0.3,
	}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 recorded call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Messages[0].Content != "hello" {
		t.Errorf("unexpected recorded request: %+v", mock.Calls[0])
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "mcq-gen")
	if got := PurposeFrom(ctx); got != "mcq-gen" {
		t.Errorf("expected mcq-gen, got %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}
