package get_interval

import (
	"context"

	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
)

type IntervalService interface {
	GetByID(ctx context.Context, id int64) (*models.IntervalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
