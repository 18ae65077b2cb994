package get_available_periods

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	getAvailablePeriods "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/get_available_periods"
)

const (
	msgInvalidChaletID = "некорректный ID шале"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow   = "конец окна запроса раньше начала"
)

type Handler struct {
	useCase GetAvailablePeriodsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailablePeriodsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chalets/{chaletId}/available-periods?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем chaletId из URL
	vars := mux.Vars(r)
	chaletIDStr := vars["chaletId"]

	chaletID, err := strconv.ParseInt(chaletIDStr, 10, 64)
	if err != nil || chaletID <= 0 {
		h.logger.Warn("GET /chalets/{id}/available-periods - Invalid chalet ID: %s", chaletIDStr)
		handlers.RespondBadRequest(w, msgInvalidChaletID)
		return
	}

	// Парсим опциональные границы окна из query параметров
	startDate, err := parseOptionalDate(r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /chalets/{id}/available-periods - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := parseOptionalDate(r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /chalets/{id}/available-periods - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailablePeriods.Request{
		ChaletID:  chaletID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailablePeriods.ErrInvalidWindow):
			h.logger.Warn("GET /chalets/{id}/available-periods - Invalid window: chalet_id=%d", chaletID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getAvailablePeriods.ErrInvalidInput):
			h.logger.Warn("GET /chalets/{id}/available-periods - Invalid input: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondBadRequest(w, msgInvalidChaletID)

		default:
			h.logger.Error("GET /chalets/{id}/available-periods - Failed: chalet_id=%d, error=%v", chaletID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chalets/{id}/available-periods - Found %d period(s) for chalet_id=%d",
		len(result.Periods), chaletID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseOptionalDate парсит дату из query параметра
// Пустая строка означает отсутствие границы (nil)
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
