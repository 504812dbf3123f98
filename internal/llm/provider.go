package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single structured-output completion backend.
// Implementations are safe for concurrent use once constructed.
type Provider interface {
	// Generate performs one blocking completion call. When req.Schema is
	// set the provider asks the service to constrain its output to that
	// schema and validates the returned JSON before handing it back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the resolved model identifier.
	ModelID() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System is the fixed instruction that frames the model's task.
	System string

	// Messages holds the conversation. quizgen always sends a single user
	// message carrying the caller's prompt.
	Messages []Message

	// Schema, when non-nil, is passed to the provider's native structured
	// output mechanism.
	Schema *Schema

	// MaxTokens caps the size of the generated output.
	MaxTokens int

	// Temperature is forwarded only when positive; zero leaves the
	// provider default in place.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who authored a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema used as an output constraint.
type Schema struct {
	// Name identifies the schema to the provider, e.g. "quiz".
	Name string

	// Description is sent along where the provider supports it.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is what a provider returns on success.
type Response struct {
	// Content is the text of the first output segment. With a Schema it
	// has already been validated against it.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
