package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contentgen-api/internal/api/shared"
	"github.com/phrazzld/contentgen-api/internal/content"
	"github.com/phrazzld/contentgen-api/internal/platform/logger"
	"github.com/phrazzld/contentgen-api/internal/service"
)

// StatusMessage is the body of the root status route.
const StatusMessage = "AI Content Generator Backend is running!"

// ContentHandler handles content generation requests.
type ContentHandler struct {
	contentService service.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(contentService service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentHandler{
		contentService: contentService,
		logger:         logger.With(slog.String("component", "content_handler")),
	}
}

// GenerateContent handles POST /api/generate-content requests.
// Success returns the generated text and the prompt that produced it;
// every failure is a 500 carrying the cause in "details".
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var in content.Input
	if err := shared.DecodeJSON(w, r, &in); err != nil {
		h.fail(w, r, log, err)
		return
	}

	resp, err := h.contentService.GenerateContent(r.Context(), in)
	if err != nil {
		h.fail(w, r, log, err)
		return
	}

	log.InfoContext(r.Context(), "content generated",
		"content_type", in.ContentType,
		"content_length", len(resp.GeneratedContent))

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (h *ContentHandler) fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.InfoContext(r.Context(), "content request failed", "error_kind", ErrorKind(err))
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, GenerateFailureMessage, err)
}

// Status handles GET / with a plain text liveness message.
func Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, StatusMessage)
}
