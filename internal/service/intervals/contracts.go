package intervals

import (
	"context"
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	"github.com/m04kA/Chalet-AvailabilityService/internal/integrations/chaletservice"
)

// IntervalRepository интерфейс репозитория интервалов доступности
type IntervalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityInterval, error)
	GetAll(ctx context.Context) ([]*domain.AvailabilityInterval, error)
	GetByChalet(ctx context.Context, chaletID int64) ([]*domain.AvailabilityInterval, error)
	GetOverlapping(ctx context.Context, chaletID int64, start, end time.Time) ([]*domain.AvailabilityInterval, error)
	Update(ctx context.Context, id int64, upd domain.IntervalUpdate) (*domain.AvailabilityInterval, error)
	Delete(ctx context.Context, id int64) error
}

// ChaletServiceClient интерфейс клиента для ChaletService
type ChaletServiceClient interface {
	GetChalet(ctx context.Context, chaletID int64) (*chaletservice.Chalet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
