package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed standard_set.json
var standardSetJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Standard returns the built-in default question set.
// The embedded data is validated at first use; a broken embed is a build
// defect, so it panics rather than returning an error.
func Standard() *Set {
	set, err := Parse(standardSetJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded question set invalid: %v", err))
	}
	return set
}

// LoadFile reads and validates a question set from a JSON file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("question set %s: %w", path, err)
	}
	return set, nil
}

// Parse validates raw JSON against the set schema plus the structural
// rules the schema cannot express, then decodes it into a Set.
func Parse(data []byte) (*Set, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := setSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode set: %w", err)
	}

	if err := checkStructure(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

// checkStructure enforces cross-field rules: correct index in range and
// unique question IDs.
func checkStructure(set *Set) error {
	seen := make(map[string]bool, len(set.Questions))
	for i := range set.Questions {
		q := &set.Questions[i]
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %s: correct index %d out of range for %d options", q.ID, q.Correct, len(q.Options))
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

// setSchema compiles the question-set schema once and caches it.
func setSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(SetSchemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", SetSchemaName)
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
