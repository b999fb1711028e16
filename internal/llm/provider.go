package llm

import (
	"context"
	"encoding/json"
)

// Provider is a chat-completion backend.
type Provider interface {
	// Complete sends prompt to the model. When prompt.Schema is set the
	// provider asks for structured output and the returned Content is JSON
	// that has been validated against the schema.
	Complete(ctx context.Context, prompt Prompt) (*Completion, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Prompt describes one request to the model.
type Prompt struct {
	// System sets the model's role and output rules.
	System string

	// Turns is the conversation. Few-shot demonstrations are sent as
	// alternating user and assistant turns ahead of the final user turn.
	Turns []Turn

	// Schema, when set, constrains the response to a JSON object. When nil
	// the response Content is the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// Turn is a single message of the conversation.
type Turn struct {
	Role Role
	Text string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// User returns a user turn.
func User(text string) Turn { return Turn{Role: RoleUser, Text: text} }

// Assistant returns an assistant turn.
func Assistant(text string) Turn { return Turn{Role: RoleAssistant, Text: text} }

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, e.g. "reasoned-answer". Used as the
	// OpenAI schema name and as the validator cache key.
	Name string

	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Stop reasons normalized across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Completion holds the model's output.
type Completion struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
