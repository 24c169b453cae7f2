package question

import (
	"strings"
	"testing"
)

func TestStandardSetLoads(t *testing.T) {
	set := Standard()

	if set.Name == "" {
		t.Error("expected a non-empty set name")
	}
	if set.TotalTimeSecs <= 0 {
		t.Errorf("TotalTimeSecs = %d, want > 0", set.TotalTimeSecs)
	}
	if set.Len() == 0 {
		t.Fatal("expected questions in the standard set")
	}

	kinds := make(map[Kind]bool)
	for i := range set.Questions {
		kinds[set.Questions[i].Kind] = true
	}
	for _, k := range Kinds {
		if !kinds[k] {
			t.Errorf("standard set has no %s questions", k)
		}
	}
}

func TestParseRejectsCorrectIndexOutOfRange(t *testing.T) {
	data := `{
		"name": "Broken",
		"total_time_secs": 600,
		"questions": [{
			"id": "q1", "kind": "logic", "difficulty": "easy",
			"prompt": "Pick one", "options": ["a", "b"],
			"correct": 5, "explanation": ""
		}]
	}`

	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error for correct index out of range")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	data := `{
		"name": "Dupes",
		"total_time_secs": 600,
		"questions": [
			{"id": "q1", "kind": "logic", "difficulty": "easy",
			 "prompt": "One", "options": ["a", "b"], "correct": 0, "explanation": ""},
			{"id": "q1", "kind": "math", "difficulty": "easy",
			 "prompt": "Two", "options": ["a", "b"], "correct": 1, "explanation": ""}
		]
	}`

	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error for duplicate question IDs")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	data := `{
		"name": "Bad kind",
		"total_time_secs": 600,
		"questions": [{
			"id": "q1", "kind": "trivia", "difficulty": "easy",
			"prompt": "Pick one", "options": ["a", "b"],
			"correct": 0, "explanation": ""
		}]
	}`

	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected schema error for unknown kind")
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
