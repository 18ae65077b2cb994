package create_interval

import (
	"context"
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
)

// IntervalRepository интерфейс репозитория интервалов
type IntervalRepository interface {
	Create(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, error)
	GetOverlapping(ctx context.Context, chaletID int64, start, end time.Time) ([]*domain.AvailabilityInterval, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
