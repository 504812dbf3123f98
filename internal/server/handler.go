package server

import (
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quiz"
)

// MsgEmptyPrompt is returned for a missing, blank or unreadable prompt.
const MsgEmptyPrompt = "Please provide a quiz prompt."

// maxBodyBytes caps the /api/generate request body.
const maxBodyBytes = 1 << 20

//go:embed web/index.html
var webFS embed.FS

type generateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Index serves the landing page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		respondErrorAndLog(w, r, http.StatusInternalServerError, "landing page unavailable", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, healthResponse{
		Status:   "ok",
		Provider: h.opts.Provider,
		Model:    h.opts.Model,
	})
}

// Generate handles POST /api/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Debug("unreadable request body")
		req = generateRequest{}
	}
	req.Prompt = strings.TrimSpace(req.Prompt)

	if err := h.validate.Struct(req); err != nil {
		respondErrorAndLog(w, r, http.StatusBadRequest, MsgEmptyPrompt, err)
		return
	}

	q, err := h.gen.Generate(r.Context(), req.Prompt)
	if err != nil {
		status, msg := classify(err)
		respondErrorAndLog(w, r, status, msg, err)
		return
	}

	log.WithField("questions", len(q.Questions)).Info("quiz generated")
	respondJSON(w, r, http.StatusOK, q)
}

// classify maps a generation failure to a status code and client message.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, quiz.ErrEmptyPrompt):
		return http.StatusBadRequest, MsgEmptyPrompt
	case llm.IsAPIError(err):
		return http.StatusBadGateway, "API error: " + err.Error()
	default:
		return http.StatusInternalServerError, "Failed to generate quiz: " + err.Error()
	}
}
