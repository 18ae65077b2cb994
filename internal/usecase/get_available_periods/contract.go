package get_available_periods

import (
	"context"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
)

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	GetWithFilter(ctx context.Context, filter domain.IntervalFilter) ([]*domain.AvailabilityInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
