package update_interval

import (
	"context"

	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
)

type IntervalService interface {
	Update(ctx context.Context, id int64, req *models.UpdateIntervalRequest) (*models.IntervalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
