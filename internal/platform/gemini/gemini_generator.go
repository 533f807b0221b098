package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/contentgen-api/internal/config"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/redact"
	"google.golang.org/genai"
)

// modelsAPI is the subset of *genai.Models the generator calls.
type modelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues GenerateContent calls
	models modelsAPI

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGenerator creates a GeminiGenerator with a genai client configured for
// the Gemini API backend.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model name
//
// Returns:
//   - A ready GeminiGenerator or an error wrapping generation.ErrInvalidConfig
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini generator initialized", "model", cfg.ModelName)

	return newGenerator(logger, client.Models, cfg.ModelName), nil
}

func newGenerator(logger *slog.Logger, models modelsAPI, model string) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Generate sends prompt to Gemini as a single user turn and returns the
// concatenated text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrEmptyPrompt)
	}

	temperature := float32(opts.Temperature)
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt),
		"temperature", temperature)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"error_type", fmt.Sprintf("%T", err))
		return "", fmt.Errorf("%w: %s", generation.ErrGenerationFailed, redact.Error(err))
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Unusable Gemini API response", "error", err)
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"response_length", len(text))

	return text, nil
}

// extractText pulls the generated text out of a response, classifying
// empty and blocked responses.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)",
				generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", fmt.Errorf("%w: nil candidate", generation.ErrInvalidResponse)
	}

	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response contains no text", generation.ErrInvalidResponse)
	}

	return b.String(), nil
}
