package create_interval

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
	createInterval "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/create_interval"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата окончания должна быть позже даты начала"
	msgIntervalConflict   = "интервал пересекается с существующим интервалом этого шале"
	msgInvalidStatus      = "недопустимый статус интервала"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateIntervalUseCase
	logger  Logger
}

func NewHandler(useCase CreateIntervalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/intervals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /intervals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /intervals - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Дублируем проверку порядка дат на wire уровне
	// (use case проверяет её повторно)
	if !useCaseReq.EndDate.After(useCaseReq.StartDate) {
		h.logger.Warn("POST /intervals - Invalid range: chalet_id=%d, start=%s, end=%s",
			req.ChaletID, req.StartDate, req.EndDate)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createInterval.ErrIntervalConflict):
			h.logger.Warn("POST /intervals - Interval conflict: chalet_id=%d, start=%s, end=%s",
				req.ChaletID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgIntervalConflict)

		case errors.Is(err, createInterval.ErrInvalidRange):
			h.logger.Warn("POST /intervals - Invalid range: chalet_id=%d", req.ChaletID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createInterval.ErrInvalidStatus):
			h.logger.Warn("POST /intervals - Invalid status: chalet_id=%d", req.ChaletID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createInterval.ErrInvalidInput):
			h.logger.Warn("POST /intervals - Invalid input: chalet_id=%d, error=%v", req.ChaletID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /intervals - Failed to create interval: chalet_id=%d, error=%v",
				req.ChaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /intervals - Interval created successfully: interval_id=%d, chalet_id=%d, nights=%d",
		result.ID, result.ChaletID, int(result.EndDate.Sub(result.StartDate)/(24*time.Hour)))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
