package update_interval

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIntervalID  = "некорректный ID интервала"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата окончания должна быть позже даты начала"
	msgInvalidStatus      = "недопустимый статус интервала"
	msgInvalidInput       = "некорректные входные данные"
	msgNotFound           = "интервал не найден"
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

// Handle PATCH /api/v1/intervals/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем intervalId из URL
	vars := mux.Vars(r)
	intervalIDStr := vars["intervalId"]

	intervalID, err := strconv.ParseInt(intervalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /intervals/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	var req UpdateIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /intervals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом дат)
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /intervals/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Дублируем проверку порядка дат на wire уровне, когда заданы обе
	// (сервис перепроверит с учетом сохраненных значений)
	if serviceReq.StartDate != nil && serviceReq.EndDate != nil &&
		!serviceReq.EndDate.After(*serviceReq.StartDate) {
		h.logger.Warn("PATCH /intervals/{id} - Invalid range: interval_id=%d", intervalID)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.Update(r.Context(), intervalID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, intervals.ErrIntervalNotFound):
			h.logger.Warn("PATCH /intervals/{id} - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, intervals.ErrInvalidRange):
			h.logger.Warn("PATCH /intervals/{id} - Invalid range: interval_id=%d", intervalID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, intervals.ErrInvalidStatus):
			h.logger.Warn("PATCH /intervals/{id} - Invalid status: interval_id=%d", intervalID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, intervals.ErrInvalidInput):
			h.logger.Warn("PATCH /intervals/{id} - Invalid input: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /intervals/{id} - Failed to update interval: interval_id=%d, error=%v",
				intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /intervals/{id} - Interval updated successfully: interval_id=%d", intervalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
