package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizgen/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).WithError(err).Error("failed to encode JSON response")
	}
}

// respondErrorAndLog writes {"error": message} and logs err. Server-side
// failures log at Error, client errors at Debug.
func respondErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	entry := logging.FromContext(r.Context()).WithFields(logrus.Fields{
		"path":        r.URL.Path,
		"method":      r.Method,
		"status_code": status,
	})
	if err != nil {
		entry = entry.WithError(err).WithField("error_type", fmt.Sprintf("%T", err))
	}

	switch {
	case status >= http.StatusInternalServerError:
		entry.Error("API error response")
	default:
		entry.Debug("API error response")
	}

	respondJSON(w, r, status, errorResponse{Error: message})
}
