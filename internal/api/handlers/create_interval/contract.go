package create_interval

import (
	"context"

	createInterval "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/create_interval"
)

type CreateIntervalUseCase interface {
	Execute(ctx context.Context, req *createInterval.Request) (*createInterval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
