package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrVenueNotFound возвращается, когда venue бронирования не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrUnauthorized возвращается при отсутствующем или отклоненном токене
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoDateRange возвращается, когда нет валидного диапазона дат
	ErrNoDateRange = errors.New("select a valid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRequestFailed возвращается при сбое сетевого вызова
	ErrRequestFailed = errors.New("request failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
