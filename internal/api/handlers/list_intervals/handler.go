package list_intervals

import (
	"net/http"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service IntervalService
	logger  Logger
}

func NewHandler(service IntervalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/intervals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /intervals - Failed to list intervals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /intervals - Listed %d interval(s)", len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
