package setgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/sthiel/mentiq/internal/llm"
	"github.com/sthiel/mentiq/internal/question"
)

// setJSON renders a schema-valid set with the given kinds, one question
// per entry.
func setJSON(kinds ...string) json.RawMessage {
	var qs []string
	for i, kind := range kinds {
		qs = append(qs, fmt.Sprintf(`{
			"id": "q-%02d",
			"kind": %q,
			"difficulty": "easy",
			"prompt": "pick the first option",
			"options": ["right", "wrong", "also wrong"],
			"correct": 0,
			"explanation": "the first option is right"
		}`, i+1, kind))
	}
	return json.RawMessage(fmt.Sprintf(
		`{"name":"generated","total_time_secs":600,"questions":[%s]}`,
		strings.Join(qs, ","),
	))
}

func testSpec(count int) Spec {
	return Spec{
		Name:          "custom",
		Count:         count,
		TotalTimeSecs: 900,
	}
}

func TestGenerateValidSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: setJSON("logic", "math", "verbal", "spatial"),
	})
	gen := New(mock, DefaultConfig())

	set, err := gen.Generate(context.Background(), testSpec(4))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}
	if set.Name != "custom" {
		t.Errorf("Name = %q, want spec name applied", set.Name)
	}
	if set.TotalTimeSecs != 900 {
		t.Errorf("TotalTimeSecs = %d, want spec time applied", set.TotalTimeSecs)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateRequestCarriesSchemaAndSpec(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: setJSON("logic", "math"),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testSpec(2)); err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != question.SetSchemaName {
		t.Fatalf("request schema = %+v, want %q", req.Schema, question.SetSchemaName)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want single turn", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Number of questions: 2") {
		t.Errorf("user message missing count:\n%s", req.Messages[0].Content)
	}
}

func TestGenerateRetriesWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: setJSON("logic")},
		llm.MockResponse{Content: setJSON("logic", "math")},
	)
	gen := New(mock, DefaultConfig())

	set, err := gen.Generate(context.Background(), testSpec(2))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateRejectsUnrequestedKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 1
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: setJSON("math", "math"),
	})
	gen := New(mock, cfg)

	spec := testSpec(2)
	spec.Kinds = []question.Kind{question.KindLogic}

	if _, err := gen.Generate(context.Background(), spec); err == nil {
		t.Fatal("set with unrequested kind was accepted")
	}
}

func TestGenerateGivesUpAfterMaxAttempts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 2
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: setJSON("logic")},
		llm.MockResponse{Content: setJSON("logic")},
		llm.MockResponse{Content: setJSON("logic", "math")},
	)
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testSpec(2)); err == nil {
		t.Fatal("expected failure after exhausting attempts")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerateRejectsBadSpec(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	specs := []Spec{
		{Count: 5, TotalTimeSecs: 600},                  // no name
		{Name: "x", Count: 1, TotalTimeSecs: 600},       // too few
		{Name: "x", Count: 5},                           // no time
	}
	for i, spec := range specs {
		if _, err := gen.Generate(context.Background(), spec); err == nil {
			t.Errorf("spec %d accepted: %+v", i, spec)
		}
	}
}
