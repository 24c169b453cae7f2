// Package llm abstracts over hosted language model APIs. Question set
// generation is its only consumer: single-turn requests that must come
// back as schema-conforming JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the returned Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Set generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema: tool name for Anthropic, schema name
	// for OpenAI. Kebab-case, e.g. "question-set".
	Name string

	// Description guides generation; it is sent to the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
