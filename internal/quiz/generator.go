package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/llm"
)

// ErrEmptyPrompt is returned when the prompt is empty after trimming.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Generator turns a free-text prompt into a Quiz.
type Generator interface {
	// Generate performs exactly one provider call. Provider errors are
	// returned unwrapped so callers can classify them with llm.IsAPIError.
	Generate(ctx context.Context, prompt string) (*Quiz, error)
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator. The provider is shared across requests.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (*Quiz, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var q Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("parse quiz: %w", err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&q); verr != nil {
			return nil, verr
		}
	}

	return &q, nil
}
