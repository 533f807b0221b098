package main

import (
	"log/slog"
	"testing"

	"github.com/phrazzld/contentgen-api/internal/config"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// CreateMinimalTestConfig returns a valid config that never reaches a real provider.
func CreateMinimalTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:               3000,
			LogLevel:           "debug",
			LogFormat:          "json",
			CORSAllowedOrigins: []string{"*"},
		},
		LLM: config.LLMConfig{
			Provider:     config.ProviderGemini,
			ModelName:    config.DefaultModelName(config.ProviderGemini),
			GeminiAPIKey: "test-gemini-key",
		},
	}
}

// newTestApplication wires an application around gen.
func newTestApplication(t *testing.T, gen generation.Generator) (*application, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.NewTestLogger()
	app, err := assembleApplication(CreateMinimalTestConfig(t), log, gen)
	require.NoError(t, err)
	return app, buf
}

func discardLogger() *slog.Logger {
	log, _ := logger.NewTestLogger()
	return log
}
