package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/contentgen-api/internal/content"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/platform/logger"
)

// ContentService generates content for validated requests.
type ContentService interface {
	// GenerateContent validates in, builds the prompt, and calls the
	// generator exactly once. Validation errors wrap
	// content.ErrInvalidRequest and are returned before any external call;
	// generator errors wrap generation.ErrGenerationFailed.
	GenerateContent(ctx context.Context, in content.Input) (*content.Response, error)
}

// contentServiceImpl implements ContentService
type contentServiceImpl struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewContentService creates a ContentService that delegates generation to g.
func NewContentService(g generation.Generator, logger *slog.Logger) (ContentService, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &contentServiceImpl{
		generator: g,
		logger:    logger.With(slog.String("component", "content_service")),
	}, nil
}

// GenerateContent implements ContentService
func (s *contentServiceImpl) GenerateContent(ctx context.Context, in content.Input) (*content.Response, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := content.Validate(in)
	if err != nil {
		log.DebugContext(ctx, "content request failed validation", "error", err)
		return nil, err
	}

	prompt := content.BuildPrompt(req)

	log.InfoContext(ctx, "generating content",
		"content_type", req.ContentType,
		"tone", req.Tone,
		"has_keywords", req.Keywords != "",
		"prompt_length", len(prompt))
	log.DebugContext(ctx, "using prompt", "prompt", prompt)

	text, err := s.generator.Generate(ctx, prompt, generation.Options{
		Temperature: content.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &content.Response{
		GeneratedContent: text,
		PromptUsed:       prompt,
	}, nil
}
