package quiz

import "github.com/abhisek/quizgen/internal/llm"

// QuizSchema is the structured-output constraint sent with every request.
// Every field is required and no additional properties are allowed.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A multiple-choice quiz with a title and ordered questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short title for the quiz",
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Question number starting from 1",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    1,
							"items":       map[string]any{"type": "string"},
							"description": "The answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation of why the correct answer is right",
						},
					},
					"required":             []any{"id", "question", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// CheckSchema compiles QuizSchema. Run it once at startup.
func CheckSchema() error {
	return llm.CompileSchema(QuizSchema)
}
