// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a prompt and
// sampling options into a single GenerateContent call through the
// google.golang.org/genai client and maps the response, or the failure,
// back into the application's generation types.
//
// Key behavior:
//
//   - The genai client is created once by NewGenerator and reused for every
//     request; it is safe for concurrent use.
//   - Each Generate call makes exactly one API call. Nothing is retried.
//   - Every failure is wrapped in generation.ErrGenerationFailed. Empty or
//     malformed responses additionally wrap generation.ErrInvalidResponse,
//     and safety blocks wrap generation.ErrContentBlocked.
package gemini
