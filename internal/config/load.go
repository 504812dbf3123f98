package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/quizgen/internal/llm"
)

// EnvPrefix prefixes every environment variable, e.g. QUIZGEN_SERVER_PORT.
const EnvPrefix = "QUIZGEN"

// apiKeyEnv lists the conventional, unprefixed credential variables that
// are accepted in addition to the QUIZGEN_ ones.
var apiKeyEnv = map[string]string{
	"llm.anthropic.api_key":  "ANTHROPIC_API_KEY",
	"llm.openai.api_key":     "OPENAI_API_KEY",
	"llm.gemini.api_key":     "GEMINI_API_KEY",
	"llm.openrouter.api_key": "OPENROUTER_API_KEY",
}

// Load reads configuration from defaults, the optional file at path, and
// the environment, in increasing order of precedence. The result is
// validated before it is returned.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range apiKeyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and that the selected LLM provider
// has a credential.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.LLM.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "text")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.lambda", false)

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.temperature", d.Temperature)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.gemini.base_url", "")
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
}
