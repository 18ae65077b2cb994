package get_available_periods

import "errors"

var (
	// ErrInvalidWindow возвращается, когда конец окна запроса раньше начала
	ErrInvalidWindow = errors.New("get_available_periods: invalid query window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_periods: invalid input data")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("get_available_periods: internal error")
)
