package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnauthorized возвращается при отсутствующем или отклоненном токене
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRequestFailed возвращается при сбое сетевого вызова
	ErrRequestFailed = errors.New("request failed")
)
