package mcq

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("The mitochondria is the powerhouse of the cell.", 5)

	if !strings.Contains(p, "The mitochondria is the powerhouse of the cell.") {
		t.Error("prompt should embed the source text")
	}
	if !strings.Contains(p, "Create exactly 5 multiple choice questions") {
		t.Error("prompt should state the question count")
	}
	if !strings.Contains(p, "JSON ARRAY of option keys") {
		t.Error("prompt should pin the correct-field shape")
	}
	if !strings.Contains(p, responseTemplate) {
		t.Error("prompt should end with the format template")
	}
}

func TestResponseTemplate_IsValidJSON(t *testing.T) {
	// The format example must itself parse, otherwise the model is shown
	// a broken target shape.
	if _, err := ExtractJSON(responseTemplate); err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
}
