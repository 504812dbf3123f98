package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrAPI is returned when the provider answered with an explicit error
// response: bad credentials, exhausted quota, a rejected schema, or a
// server-side fault.
type ErrAPI struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ErrAPI) Error() string {
	return fmt.Sprintf("%s returned status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *ErrAPI) Unwrap() error { return e.Err }

// ErrRateLimit is an ErrAPI variant for 429 responses.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable means no response was received at all, e.g. a
// DNS, connection or TLS failure.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the returned text is not JSON or does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the output was cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsAPIError reports whether err carries an explicit error response from
// the provider, as opposed to a transport or parsing failure.
func IsAPIError(err error) bool {
	var apiErr *ErrAPI
	if errors.As(err, &apiErr) {
		return true
	}
	var rl *ErrRateLimit
	return errors.As(err, &rl)
}
