package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contentgen-api/internal/config"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/platform/gemini"
	"github.com/phrazzld/contentgen-api/internal/platform/openai"
	"github.com/phrazzld/contentgen-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator      generation.Generator
	contentService service.ContentService
}

// newApplication creates a new application instance with all dependencies
// initialized, including the LLM client for the configured provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	gen, err := newGenerator(ctx, cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	return assembleApplication(cfg, logger, gen)
}

// assembleApplication wires the services around an already built generator.
func assembleApplication(cfg *config.Config, logger *slog.Logger, gen generation.Generator) (*application, error) {
	contentService, err := service.NewContentService(gen, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		generator:      gen,
		contentService: contentService,
	}, nil
}

// newGenerator builds the generator for the configured provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := gemini.NewGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderOpenAI:
		g, err := openai.NewGenerator(logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	ln, err := listen(app.config.Server.Port)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	if err := app.startHTTPServer(ctx, router, ln); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
