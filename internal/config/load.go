package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "CONTENTGEN"

// Load configuration from a .env file, an optional config.yaml and
// environment variables. Environment variables take precedence over values
// from the config file. The unprefixed PORT, GEMINI_API_KEY and
// OPENAI_API_KEY variables are honored as well.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables, e.g. CONTENTGEN_SERVER_LOG_LEVEL
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional unprefixed names; the prefixed name wins when both are set.
	bindings := map[string][]string{
		"server.port":        {EnvPrefix + "_SERVER_PORT", "PORT"},
		"llm.gemini_api_key": {EnvPrefix + "_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"llm.openai_api_key": {EnvPrefix + "_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"},
	}
	for key, envVars := range bindings {
		if err := v.BindEnv(append([]string{key}, envVars...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = DefaultModelName(cfg.LLM.Provider)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
