package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels the calls made with ctx, e.g. "quiz-gen".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider logs one structured entry per call: latency, token
// usage and an estimated cost.
type LoggingProvider struct {
	inner Provider
	name  string
	log   logrus.FieldLogger
}

// WithLogging wraps p. A nil logger falls back to the logrus standard logger.
func WithLogging(p Provider, name string, log logrus.FieldLogger) Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingProvider{inner: p, name: name, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"provider":   l.name,
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
		"max_tokens": req.MaxTokens,
	}
	if req.Schema != nil {
		fields["schema"] = req.Schema.Name
	}

	if err != nil {
		l.log.WithFields(fields).WithError(err).Warn("llm request failed")
		return nil, err
	}

	fields["model"] = resp.Model
	fields["input_tokens"] = resp.Usage.InputTokens
	fields["output_tokens"] = resp.Usage.OutputTokens
	if cost := LookupCost(resp.Model); cost != nil {
		fields["est_cost_usd"] = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	l.log.WithFields(fields).Info("llm request completed")

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
