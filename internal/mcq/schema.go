package mcq

import "github.com/lahari/mcqgen/internal/llm"

// QuestionSetSchema describes the question-set object for providers that
// support strict structured output (Config.StrictSchema). Question IDs
// are numeric strings, so the shape is expressed with patternProperties.
var QuestionSetSchema = &llm.Schema{
	Name:        "mcq-set",
	Description: "A set of multiple-choice questions keyed by 1-based sequential IDs",
	Definition: map[string]any{
		"type": "object",
		"patternProperties": map[string]any{
			"^[0-9]+$": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"mcq": map[string]any{
						"type":        "string",
						"description": "The question text",
					},
					"options": map[string]any{
						"type":        "object",
						"description": "Exactly four options keyed a-d",
						"additionalProperties": map[string]any{
							"type": "string",
						},
					},
					"correct": map[string]any{
						"type":        "array",
						"description": "Correct option keys, one or more",
						"items": map[string]any{
							"type": "string",
						},
						"minItems": 1,
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Explanation of the correct answer(s)",
					},
				},
				"required":             []any{"mcq", "options", "correct", "explanation"},
				"additionalProperties": false,
			},
		},
		"additionalProperties": false,
	},
}
