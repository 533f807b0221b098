package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/phrazzld/contentgen-api/internal/config"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/redact"
)

// finishReasonContentFilter is reported when OpenAI's moderation cut the output.
const finishReasonContentFilter = "content_filter"

// completionsAPI is the subset of the chat completions service the generator calls.
type completionsAPI interface {
	New(
		ctx context.Context,
		body openaisdk.ChatCompletionNewParams,
		opts ...option.RequestOption,
	) (*openaisdk.ChatCompletion, error)
}

// Generator implements generation.Generator on top of OpenAI chat completions.
type Generator struct {
	logger      *slog.Logger
	completions completionsAPI
	model       string
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator using cfg.OpenAIAPIKey and cfg.ModelName.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client := openaisdk.NewClient(
		option.WithAPIKey(cfg.OpenAIAPIKey),
		// The SDK retries by default; a failed call is reported as-is.
		option.WithMaxRetries(0),
	)

	logger.Info("OpenAI generator initialized", "model", cfg.ModelName)

	return newGenerator(logger, &client.Chat.Completions, cfg.ModelName), nil
}

func newGenerator(logger *slog.Logger, completions completionsAPI, model string) *Generator {
	return &Generator{
		logger:      logger,
		completions: completions,
		model:       model,
	}
}

// Generate sends prompt as a single user message and returns the first choice.
func (g *Generator) Generate(ctx context.Context, prompt string, opts generation.Options) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrEmptyPrompt)
	}

	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(opts.Temperature),
	}

	g.logger.InfoContext(ctx, "Making OpenAI API call",
		"model", g.model,
		"prompt_length", len(prompt),
		"temperature", opts.Temperature)

	resp, err := g.completions.New(ctx, params)
	if err != nil {
		g.logger.ErrorContext(ctx, "OpenAI API call failed",
			"error", redact.Error(err),
			"error_type", fmt.Sprintf("%T", err))
		return "", fmt.Errorf("%w: %s", generation.ErrGenerationFailed, redact.Error(err))
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Unusable OpenAI API response", "error", err)
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "OpenAI API call successful",
		"response_length", len(text))

	return text, nil
}

func extractText(resp *openaisdk.ChatCompletion) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == finishReasonContentFilter {
		return "", fmt.Errorf("%w: output removed by content filter", generation.ErrContentBlocked)
	}
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("%w: model refused: %s", generation.ErrContentBlocked, choice.Message.Refusal)
	}
	if choice.Message.Content == "" {
		return "", fmt.Errorf("%w: response contains no text", generation.ErrInvalidResponse)
	}

	return choice.Message.Content, nil
}
