// Package server is the HTTP front door: the landing page and the quiz
// generation API.
package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Options configures the router.
type Options struct {
	// Provider and Model are reported by /healthz.
	Provider string
	Model    string

	// CORSOrigins defaults to any origin when empty.
	CORSOrigins []string
}

// Handler serves the quiz API on top of a quiz.Generator.
type Handler struct {
	gen      quiz.Generator
	opts     Options
	validate *validator.Validate
}

// NewHandler creates a Handler. The generator is shared by all requests.
func NewHandler(gen quiz.Generator, opts Options) *Handler {
	return &Handler{
		gen:      gen,
		opts:     opts,
		validate: validator.New(),
	}
}

// New builds the router with middleware and all routes mounted.
func New(gen quiz.Generator, opts Options) *chi.Mux {
	h := NewHandler(gen, opts)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TraceID)
	r.Use(AccessLog)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{TraceIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", h.Index)
	r.Get("/healthz", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)
	})
	return r
}
