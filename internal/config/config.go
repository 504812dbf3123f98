// Package config loads quizgen settings from the environment and an
// optional config file.
package config

import "github.com/abhisek/quizgen/internal/llm"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    llm.Config   `mapstructure:"llm"`
}

// ServerConfig contains HTTP server and logging settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`

	// CORSOrigins lists allowed browser origins for the API.
	CORSOrigins []string `mapstructure:"cors_origins" validate:"dive,required"`

	// Lambda serves the router through API Gateway events instead of a
	// TCP listener.
	Lambda bool `mapstructure:"lambda"`
}
