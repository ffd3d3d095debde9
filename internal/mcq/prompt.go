package mcq

import (
	"fmt"
	"strings"
)

// responseTemplate is the literal example of the target JSON shape sent
// with every generation request. Three placeholder questions keyed
// "1".."3", four options each, "correct" always an array of option keys.
const responseTemplate = `{
  "1": {
    "mcq": "multiple choice question",
    "options": {
      "a": "choice here",
      "b": "choice here",
      "c": "choice here",
      "d": "choice here"
    },
    "correct": ["correct answer(s)"],
    "explanation": "Explanation of correct answer(s)"
  },
  "2": {
    "mcq": "multiple choice question",
    "options": {
      "a": "choice here",
      "b": "choice here",
      "c": "choice here",
      "d": "choice here"
    },
    "correct": ["correct answer(s)"],
    "explanation": "Explanation of correct answer(s)"
  },
  "3": {
    "mcq": "multiple choice question",
    "options": {
      "a": "choice here",
      "b": "choice here",
      "c": "choice here",
      "d": "choice here"
    },
    "correct": ["correct answer(s)"],
    "explanation": "Explanation of correct answer(s)"
  }
}`

// buildPrompt constructs the single-message instruction for one
// generation call. Generation is stateless: every chunk gets a complete,
// self-contained prompt and no chat history is carried between calls.
func buildPrompt(text string, numQuestions int) string {
	var b strings.Builder

	b.WriteString("Text:\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString("You are an expert MCQ generator.\n\n")
	fmt.Fprintf(&b, "Create exactly %d multiple choice questions with at least one question having more than one correct answer.\n\n", numQuestions)
	b.WriteString(`RULES:
- Questions must be based ONLY on the provided text
- No repetition of questions
- Each question must have 4 options (a, b, c, d)
- Each question can have one or more correct answers
- Provide a clear explanation for each correct answer
- The field "correct" MUST ALWAYS be a JSON ARRAY of option keys
- If only one option is correct, return a list with one element
- Otherwise, if multiple options are correct, return a list with all correct elements
- Use ONLY keys from the "options" object
- Output ONLY valid JSON
- No markdown, no extra text

FORMAT (follow this strictly):
`)
	b.WriteString(responseTemplate)

	return b.String()
}
