package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quiz"
)

// app bundles what every command that talks to a provider needs.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	provider llm.Provider
	gen      quiz.Generator
}

// newApp configures logging, checks the quiz schema and builds the
// provider and generator. The provider is built once and shared.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log, err := logging.Setup(cfg.Server.LogLevel, cfg.Server.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	if err := quiz.CheckSchema(); err != nil {
		return nil, fmt.Errorf("quiz schema: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		provider: provider,
		gen:      quiz.New(provider, generatorConfig(cfg)),
	}, nil
}

// generatorConfig applies configured overrides to the default generator
// settings.
func generatorConfig(cfg *config.Config) quiz.Config {
	qc := quiz.DefaultConfig()
	qc.Temperature = cfg.LLM.Temperature
	return qc
}
