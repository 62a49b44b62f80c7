package export

// quizSchema is the JSON schema the export output must satisfy. It pins
// the envelope and the per-question required fields while leaving the
// variant payloads open to additive change.
var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"source": map[string]any{"type": "string"},
		"quiz": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema,
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
		"diagnostics": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"severity": map[string]any{"enum": []any{"info", "warning"}},
					"record":   map[string]any{"type": "integer"},
					"message":  map[string]any{"type": "string"},
				},
				"required":             []any{"severity", "message"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"quiz"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"enum": []any{"WR", "SA", "M", "MC", "TF", "MS", "O"},
		},
		"id":         map[string]any{"type": "string"},
		"title":      map[string]any{"type": "string", "minLength": 1},
		"text":       map[string]any{"type": "string", "minLength": 1},
		"points":     map[string]any{"type": "integer"},
		"difficulty": map[string]any{"type": "integer"},
		"image":      map[string]any{"type": "string"},
		"hint":       map[string]any{"type": "string"},
		"feedback":   map[string]any{"type": "string"},
		"writtenResponse": map[string]any{"type": "object"},
		"shortAnswer": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"best": map[string]any{"type": "string"},
				"eval": map[string]any{"enum": []any{"regexp", "sensitive", "insensitive"}},
				"rows": map[string]any{"type": "integer"},
				"cols": map[string]any{"type": "integer"},
			},
			"required": []any{"best", "eval", "rows", "cols"},
		},
		"matching": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pairs": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"choiceNo": map[string]any{"type": "integer", "minimum": 1},
						},
						"required": []any{"choiceNo", "choiceText", "matchText"},
					},
				},
			},
			"required": []any{"pairs"},
		},
		"multipleChoice": map[string]any{"type": "object"},
		"trueFalse": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"true":  map[string]any{"type": "object"},
				"false": map[string]any{"type": "object"},
			},
			"required": []any{"true", "false"},
		},
		"multiSelect": map[string]any{"type": "object"},
		"ordering":    map[string]any{"type": "object"},
	},
	"required":             []any{"type", "title", "text", "points"},
	"additionalProperties": false,
}
