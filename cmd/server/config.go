package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/contentgen-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the effective configuration without its secrets.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	logger.Debug("LLM configuration",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"gemini_api_key_present", cfg.LLM.GeminiAPIKey != "",
		"openai_api_key_present", cfg.LLM.OpenAIAPIKey != "",
		"cors_allowed_origins", cfg.Server.CORSAllowedOrigins)
}
