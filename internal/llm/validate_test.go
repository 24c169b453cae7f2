package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func colorSchema() *Schema {
	return &Schema{
		Name: "test-color",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"color": map[string]any{
					"type": "string",
					"enum": []any{"red", "green"},
				},
				"count": map[string]any{"type": "integer"},
			},
			"required":             []any{"color"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(colorSchema(), json.RawMessage(`{"color":"red","count":2}`))
	if err != nil {
		t.Fatalf("conforming payload rejected: %v", err)
	}
}

func TestValidateResponseRejectsViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{color:`},
		{"missing required", `{"count":2}`},
		{"enum violation", `{"color":"blue"}`},
		{"extra property", `{"color":"red","extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(colorSchema(), json.RawMessage(tt.raw))
			var invResp *ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
