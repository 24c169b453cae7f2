// Package setgen builds complete question sets with an LLM provider.
// Generated sets go through the same schema and structural validation
// as sets loaded from disk, plus balance checks specific to generation.
package setgen

import (
	"context"
	"fmt"

	"github.com/sthiel/mentiq/internal/llm"
	"github.com/sthiel/mentiq/internal/question"
)

// Spec describes the set to generate.
type Spec struct {
	Name          string
	Count         int
	TotalTimeSecs int

	// Kinds restricts question kinds; empty means all of them.
	Kinds []question.Kind

	// Difficulty is a free-form mix description; empty means mixed.
	Difficulty string

	// Theme optionally flavors question content.
	Theme string
}

// Generator produces question sets.
type Generator interface {
	Generate(ctx context.Context, spec Spec) (*question.Set, error)
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a validated set. The provider's own retry layer
// handles transport errors and one schema violation; this loop retries
// sets that parse but fail the balance checks.
func (g *LLMGenerator) Generate(ctx context.Context, spec Spec) (*question.Set, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "set-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(spec)},
		},
		Schema: &llm.Schema{
			Name:        question.SetSchemaName,
			Description: "A complete timed multiple-choice question set",
			Definition:  question.SetSchemaDefinition,
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	var lastErr error
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}

		set, err := question.Parse(resp.Content)
		if err != nil {
			lastErr = err
			continue
		}
		if err := checkBalance(set, spec); err != nil {
			lastErr = err
			continue
		}

		set.Name = spec.Name
		set.TotalTimeSecs = spec.TotalTimeSecs
		return set, nil
	}

	return nil, fmt.Errorf("no acceptable set after %d attempts: %w", g.config.MaxAttempts, lastErr)
}

func (s Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("setgen: set name is required")
	}
	if s.Count < 2 {
		return fmt.Errorf("setgen: need at least 2 questions, got %d", s.Count)
	}
	if s.TotalTimeSecs <= 0 {
		return fmt.Errorf("setgen: total time must be positive, got %d", s.TotalTimeSecs)
	}
	return nil
}

// checkBalance verifies properties the JSON schema cannot express: the
// requested count, only requested kinds, and no kind dominating.
func checkBalance(set *question.Set, spec Spec) error {
	if set.Len() != spec.Count {
		return fmt.Errorf("setgen: got %d questions, want %d", set.Len(), spec.Count)
	}

	allowed := map[question.Kind]bool{}
	for _, k := range kindsForSpec(spec) {
		allowed[k] = true
	}

	perKind := map[question.Kind]int{}
	for _, q := range set.Questions {
		if !allowed[q.Kind] {
			return fmt.Errorf("setgen: question %s has unrequested kind %q", q.ID, q.Kind)
		}
		perKind[q.Kind]++
	}

	// With multiple kinds requested, no single kind may exceed double
	// its even share.
	if len(allowed) > 1 {
		limit := 2 * (spec.Count/len(allowed) + 1)
		for k, n := range perKind {
			if n > limit {
				return fmt.Errorf("setgen: kind %q has %d of %d questions", k, n, spec.Count)
			}
		}
	}

	return nil
}

func kindsForSpec(spec Spec) []question.Kind {
	if len(spec.Kinds) == 0 {
		return question.Kinds
	}
	return spec.Kinds
}
