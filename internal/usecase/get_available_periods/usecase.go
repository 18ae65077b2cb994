package get_available_periods

import (
	"context"
	"fmt"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/ptr"
)

// UseCase use case для получения доступных периодов шале
//
// Движок не вычисляет "дыры" между занятыми интервалами: доступный период -
// это существующий интервал со статусом available, пересекающий окно запроса.
// Фильтр, а не калькулятор календаря
type UseCase struct {
	intervalRepo IntervalRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(intervalRepo IntervalRepository, logger Logger) *UseCase {
	return &UseCase{
		intervalRepo: intervalRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных периодов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailablePeriods: chalet=%d, window=[%s, %s]",
		req.ChaletID, formatBound(req, true), formatBound(req, false))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailablePeriods: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбираем интервалы со статусом available, пересекающие окно:
	// - end_date >= StartDate (интервал дотягивается до начала окна)
	// - start_date <= EndDate (интервал начинается не позже конца окна)
	filter := domain.IntervalFilter{
		ChaletID:  req.ChaletID,
		Status:    ptr.Ptr(domain.StatusAvailable),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	intervals, err := uc.intervalRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailablePeriods: failed to get intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get intervals: %v", ErrInternal, err)
	}

	periods := make([]Period, 0, len(intervals))
	for _, interval := range intervals {
		periods = append(periods, Period{
			ID:            interval.ID,
			StartDate:     interval.StartDate,
			EndDate:       interval.EndDate,
			PricePerNight: interval.PricePerNight,
			Notes:         interval.Notes,
		})
	}

	uc.logger.Info("GetAvailablePeriods: found %d available period(s) for chalet=%d",
		len(periods), req.ChaletID)

	return &Response{
		ChaletID: req.ChaletID,
		Periods:  periods,
	}, nil
}

// formatBound форматирует границу окна запроса для логирования
func formatBound(req *Request, start bool) string {
	bound := req.StartDate
	if !start {
		bound = req.EndDate
	}
	if bound == nil {
		return "-"
	}
	return bound.Format(domain.DateFormat)
}
