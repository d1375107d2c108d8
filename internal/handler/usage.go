package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passkit/internal/middleware"
	"github.com/vaultpass/passkit/internal/service"
)

// UsageHandler serves aggregated usage statistics.
type UsageHandler struct {
	service *service.UsageService
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(svc *service.UsageService) *UsageHandler {
	return &UsageHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests.
func (h *UsageHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if sub, ok := middleware.SubjectFromContext(r.Context()); ok {
		slog.InfoContext(r.Context(), "usage statistics requested", "subject", sub)
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.ErrorContext(r.Context(), "loading usage summary failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
