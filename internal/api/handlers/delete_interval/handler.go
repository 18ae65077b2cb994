package delete_interval

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals"
)

const (
	msgInvalidIntervalID = "некорректный ID интервала"
	msgNotFound          = "интервал не найден"
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

// Handle DELETE /api/v1/intervals/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем intervalId из URL
	vars := mux.Vars(r)
	intervalIDStr := vars["intervalId"]

	intervalID, err := strconv.ParseInt(intervalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /intervals/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	if err := h.service.Delete(r.Context(), intervalID); err != nil {
		switch {
		case errors.Is(err, intervals.ErrIntervalNotFound):
			h.logger.Warn("DELETE /intervals/{id} - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /intervals/{id} - Failed to delete interval: interval_id=%d, error=%v",
				intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /intervals/{id} - Interval deleted successfully: interval_id=%d", intervalID)
	handlers.RespondNoContent(w)
}
