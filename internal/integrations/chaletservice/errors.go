package chaletservice

import "errors"

var (
	// ErrChaletNotFound возвращается, когда шале не найдено в реестре
	ErrChaletNotFound = errors.New("chaletservice: chalet not found")

	// ErrInvalidResponse возвращается при некорректном ответе ChaletService
	ErrInvalidResponse = errors.New("chaletservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("chaletservice: internal error")
)
