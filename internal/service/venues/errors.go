package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда venue не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrUnauthorized возвращается при отсутствующем или отклоненном токене
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRequestFailed возвращается при сбое сетевого вызова
	ErrRequestFailed = errors.New("request failed")

	// ErrSearchSuperseded возвращается, когда результат поиска устарел:
	// за время выполнения был выпущен более новый запрос
	ErrSearchSuperseded = errors.New("search superseded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
