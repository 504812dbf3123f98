// Package logging configures logrus and hands out request-scoped entries.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// Setup configures the logrus standard logger. format is "text" or "json".
func Setup(level, format string) (*logrus.Logger, error) {
	return configure(logrus.StandardLogger(), os.Stderr, level, format)
}

func configure(l *logrus.Logger, out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	l.SetOutput(out)

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return l, nil
}

// WithTraceID stores the trace ID in ctx.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, traceID)
}

// TraceID returns the trace ID stored in ctx, or "".
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromContext returns an entry tagged with the request's trace and chi
// request IDs when present.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if id := TraceID(ctx); id != "" {
		entry = entry.WithField("trace_id", id)
	}
	if id := middleware.GetReqID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
