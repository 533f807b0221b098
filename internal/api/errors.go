package api

import (
	"errors"

	"github.com/phrazzld/contentgen-api/internal/api/shared"
	"github.com/phrazzld/contentgen-api/internal/content"
	"github.com/phrazzld/contentgen-api/internal/generation"
)

// GenerateFailureMessage is the error text of every failed generation request.
const GenerateFailureMessage = "Failed to generate content"

// Error kinds reported in logs for failed generation requests.
const (
	KindMalformedBody   = "malformed_body"
	KindInvalidRequest  = "invalid_request"
	KindContentBlocked  = "content_blocked"
	KindInvalidResponse = "invalid_response"
	KindGeneration      = "generation_failed"
	KindUnknown         = "unknown"
)

// ErrorKind classifies err for logging. The HTTP response does not depend on
// it: every failure is reported the same way.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, shared.ErrMalformedBody):
		return KindMalformedBody
	case errors.Is(err, content.ErrInvalidRequest):
		return KindInvalidRequest
	case errors.Is(err, generation.ErrContentBlocked):
		return KindContentBlocked
	case errors.Is(err, generation.ErrInvalidResponse):
		return KindInvalidResponse
	case errors.Is(err, generation.ErrGenerationFailed):
		return KindGeneration
	default:
		return KindUnknown
	}
}
