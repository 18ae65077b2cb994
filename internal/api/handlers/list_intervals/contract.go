package list_intervals

import (
	"context"

	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
)

type IntervalService interface {
	GetAll(ctx context.Context) (*models.IntervalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
