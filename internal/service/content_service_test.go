package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/contentgen-api/internal/content"
	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/phrazzld/contentgen-api/internal/mocks"
	"github.com/phrazzld/contentgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentService(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger()

	_, err := NewContentService(nil, log)
	assert.ErrorIs(t, err, ErrNilGenerator)

	_, err = NewContentService(&mocks.MockGenerator{}, nil)
	assert.Error(t, err)

	svc, err := NewContentService(&mocks.MockGenerator{}, log)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestContentService_GenerateContent(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, prompt string, opts generation.Options) (string, error) {
			return "Ride further with less effort.", nil
		},
	}
	log, _ := logger.NewTestLogger()
	svc, err := NewContentService(gen, log)
	require.NoError(t, err)

	resp, err := svc.GenerateContent(context.Background(), content.Input{
		Topic:       "electric bikes",
		ContentType: "product_description",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	expectedPrompt := `Generate a product_description about "electric bikes".` +
		` The tone should be casual.` +
		` Write a compelling product description highlighting key features and benefits.`

	assert.Equal(t, "Ride further with less effort.", resp.GeneratedContent)
	assert.Equal(t, expectedPrompt, resp.PromptUsed)
	assert.Equal(t, expectedPrompt, gen.LastPrompt(), "the prompt returned is the prompt sent")
	assert.Equal(t, 1, gen.CallCount())
	assert.InDelta(t, 0.7, gen.LastOptions().Temperature, 1e-9)
}

func TestContentService_ValidationFailsBeforeGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input content.Input
	}{
		{name: "short topic", input: content.Input{Topic: "ab", ContentType: "blog_post"}},
		{name: "unknown content type", input: content.Input{Topic: "electric bikes", ContentType: "haiku"}},
		{name: "empty input", input: content.Input{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := &mocks.MockGenerator{}
			log, _ := logger.NewTestLogger()
			svc, err := NewContentService(gen, log)
			require.NoError(t, err)

			resp, err := svc.GenerateContent(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, content.ErrInvalidRequest)
			assert.Zero(t, gen.CallCount(), "generator must not be called for invalid input")
		})
	}
}

func TestContentService_GeneratorError(t *testing.T) {
	t.Parallel()

	upstream := fmt.Errorf("%w: connection reset by peer", generation.ErrGenerationFailed)
	gen := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, prompt string, opts generation.Options) (string, error) {
			return "", upstream
		},
	}
	log, _ := logger.NewTestLogger()
	svc, err := NewContentService(gen, log)
	require.NoError(t, err)

	resp, err := svc.GenerateContent(context.Background(), content.Input{
		Topic:       "launch day",
		ContentType: "social_media_update",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, generation.ErrGenerationFailed))
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 1, gen.CallCount(), "no retries")
}

func TestContentService_LogsPrompt(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, prompt string, opts generation.Options) (string, error) {
			return "ok", nil
		},
	}
	log, buf := logger.NewTestLogger()
	svc, err := NewContentService(gen, log)
	require.NoError(t, err)

	_, err = svc.GenerateContent(context.Background(), content.Input{Topic: "tea", ContentType: "blog_post"})
	require.NoError(t, err)

	entries, err := buf.Entries()
	require.NoError(t, err)

	var found bool
	for _, e := range entries {
		if e["msg"] == "using prompt" {
			found = true
			assert.Equal(t, gen.LastPrompt(), e["prompt"])
			assert.Equal(t, "content_service", e["component"])
		}
	}
	assert.True(t, found, "prompt should be logged at debug level")
}
