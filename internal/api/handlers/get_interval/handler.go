package get_interval

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

// Handle GET /api/v1/intervals/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем intervalId из URL
	vars := mux.Vars(r)
	intervalIDStr := vars["intervalId"]

	intervalID, err := strconv.ParseInt(intervalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /intervals/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	interval, err := h.service.GetByID(r.Context(), intervalID)
	if err != nil {
		switch {
		case errors.Is(err, intervals.ErrIntervalNotFound):
			h.logger.Warn("GET /intervals/{id} - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /intervals/{id} - Failed to get interval: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /intervals/{id} - Interval retrieved successfully: interval_id=%d", intervalID)
	handlers.RespondJSON(w, http.StatusOK, interval)
}
