package create_interval

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("create_interval: end date must be after start date")

	// ErrIntervalConflict возвращается, когда новый интервал пересекается
	// с уже существующим интервалом этого шале
	ErrIntervalConflict = errors.New("create_interval: conflicting interval exists")

	// ErrInvalidStatus возвращается при недопустимом статусе
	ErrInvalidStatus = errors.New("create_interval: invalid interval status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_interval: invalid input data")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_interval: internal error")
)
