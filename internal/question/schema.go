package question

// SetSchemaName identifies the question-set schema for compilation caching
// and for LLM structured-output requests.
const SetSchemaName = "question-set"

// SetSchemaDefinition is the JSON Schema every question set must satisfy,
// whether it ships embedded, loads from a file, or comes back from an LLM.
var SetSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Display name of the question set",
		},
		"total_time_secs": map[string]any{
			"type":        "integer",
			"minimum":     60,
			"description": "Time budget in seconds for the whole set",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"logic", "math", "verbal", "spatial", "pattern"},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard", "expert"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 6,
						"items":    map[string]any{"type": "string"},
					},
					"correct": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"description": "Index into options of the right answer",
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
				"required": []any{"id", "kind", "difficulty", "prompt", "options", "correct", "explanation"},
			},
		},
	},
	"required": []any{"name", "total_time_secs", "questions"},
}
