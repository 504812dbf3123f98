package quiz

import (
	"fmt"
	"strings"
)

// Validator checks a parsed quiz. Implementations are stateless.
type Validator interface {
	Name() string
	Validate(q *Quiz) *ValidationError
}

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks the title, the question list, and that ids
// run 1..N in array order.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Quiz) *ValidationError {
	if strings.TrimSpace(q.Title) == "" {
		return v.fail("title is empty")
	}
	if len(q.Questions) == 0 {
		return v.fail("quiz has no questions")
	}
	for i, item := range q.Questions {
		if item.ID != i+1 {
			return v.fail(fmt.Sprintf("question %d has id %d, want %d", i+1, item.ID, i+1))
		}
		if strings.TrimSpace(item.Question) == "" {
			return v.fail(fmt.Sprintf("question %d has empty text", item.ID))
		}
		if strings.TrimSpace(item.Explanation) == "" {
			return v.fail(fmt.Sprintf("question %d has empty explanation", item.ID))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// OptionsValidator checks that every question has at least two non-empty
// options and a correct_index inside them.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Quiz) *ValidationError {
	for _, item := range q.Questions {
		if len(item.Options) < 2 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d has %d options, want at least 2", item.ID, len(item.Options)),
			}
		}
		for j, opt := range item.Options {
			if strings.TrimSpace(opt) == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("question %d option %d is empty", item.ID, j),
				}
			}
		}
		if item.CorrectIndex < 0 || item.CorrectIndex >= len(item.Options) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d correct_index %d out of range [0,%d)", item.ID, item.CorrectIndex, len(item.Options)),
			}
		}
	}
	return nil
}
