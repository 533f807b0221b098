// Package openai provides a generation.Generator backed by the OpenAI Chat
// Completions API. It is the alternative to the Gemini adapter and is
// selected with llm.provider=openai.
//
// Like the Gemini adapter, each Generate call is a single request with no
// retries, and every failure is wrapped in generation.ErrGenerationFailed.
package openai
