// Package generation defines the boundary between the application core and
// the hosted LLM services that turn a prompt into text. Provider adapters
// live under internal/platform and implement the Generator interface; the
// rest of the application depends only on this package.
package generation
