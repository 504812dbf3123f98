package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProvider_Success(t *testing.T) {
	logger, hook := test.NewNullLogger()
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 1_000_000, OutputTokens: 0},
	})
	p := WithLogging(mock, "mock", logger)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	_, err := p.Generate(ctx, Request{MaxTokens: 10})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "quiz-gen", entry.Data["purpose"])
	assert.Equal(t, "mock", entry.Data["provider"])
	assert.Equal(t, 1_000_000, entry.Data["input_tokens"])
	// "mock" has no pricing entry.
	assert.NotContains(t, entry.Data, "est_cost_usd")
}

func TestLoggingProvider_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "mock", logger)

	_, err := p.Generate(context.Background(), Request{})
	require.EqualError(t, err, "boom")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unknown", entry.Data["purpose"])
	assert.Equal(t, "mock", p.ModelID())
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-sonnet-4-5-20250929")
	require.NotNil(t, c)
	assert.InDelta(t, 3.0+15.0, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.Nil(t, LookupCost("no-such-model"))
}
