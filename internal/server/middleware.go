package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizgen/internal/logging"
)

// TraceIDHeader carries the per-request trace ID back to the client.
const TraceIDHeader = "X-Trace-ID"

// TraceID assigns each request a UUID, stores it in the context for
// logging and echoes it in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(TraceIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.WithTraceID(r.Context(), id)))
	})
}

// AccessLog logs one line per request through logrus.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.FromContext(r.Context()).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"remote_addr": r.RemoteAddr,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
	})
}

// Recoverer turns a handler panic into a JSON 500 so clients always get an
// error object. http.ErrAbortHandler is re-panicked for net/http to handle.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.FromContext(r.Context()).
				WithField("stack", string(debug.Stack())).
				Errorf("recovered from panic: %v", rec)
			respondErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to generate quiz: "+fmt.Sprint(rec), fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
