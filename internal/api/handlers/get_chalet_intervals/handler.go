package get_chalet_intervals

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
)

const (
	msgInvalidChaletID = "некорректный ID шале"
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

// Handle GET /api/v1/chalets/{chaletId}/intervals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем chaletId из URL
	vars := mux.Vars(r)
	chaletIDStr := vars["chaletId"]

	chaletID, err := strconv.ParseInt(chaletIDStr, 10, 64)
	if err != nil || chaletID <= 0 {
		h.logger.Warn("GET /chalets/{id}/intervals - Invalid chalet ID: %s", chaletIDStr)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	// Пустой календарь - не ошибка, вернется пустой список
	result, err := h.service.GetByChalet(r.Context(), chaletID)
	if err != nil {
		h.logger.Error("GET /chalets/{id}/intervals - Failed to get intervals: chalet_id=%d, error=%v", chaletID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chalets/{id}/intervals - Retrieved %d interval(s) for chalet_id=%d",
		len(result.Intervals), chaletID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
