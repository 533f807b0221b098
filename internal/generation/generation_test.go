package generation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/contentgen-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

// TestErrorWrapping verifies that provider errors wrapped the way adapters
// wrap them stay matchable by both sentinels.
func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cause error
	}{
		{name: "invalid response", cause: generation.ErrInvalidResponse},
		{name: "content blocked", cause: generation.ErrContentBlocked},
		{name: "empty prompt", cause: generation.ErrEmptyPrompt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("%w: %w", generation.ErrGenerationFailed, tc.cause)
			assert.True(t, errors.Is(err, generation.ErrGenerationFailed))
			assert.True(t, errors.Is(err, tc.cause))
			assert.Contains(t, err.Error(), tc.cause.Error())
		})
	}
}
