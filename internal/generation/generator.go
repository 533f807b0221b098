package generation

import "context"

// Options carries the sampling configuration for a single call.
type Options struct {
	Temperature float64
}

// Generator turns a prompt into generated text using an external LLM.
//
// Implementations make exactly one upstream call per invocation and never
// retry. Any failure is returned wrapped in ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}
