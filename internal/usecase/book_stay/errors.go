package book_stay

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDateRange возвращается, когда нет committed-диапазона из ровно
	// двух упорядоченных дат (или диапазон дает ноль ночей)
	ErrNoDateRange = errors.New("book_stay: select a valid date range")

	// ErrVenueNotFound возвращается, когда venue не найден
	ErrVenueNotFound = errors.New("book_stay: venue not found")

	// ErrUnauthorized возвращается при отсутствующем или отклоненном токене
	ErrUnauthorized = errors.New("book_stay: unauthorized")

	// ErrRequestFailed возвращается при сбое сетевого вызова создания.
	// Валидационные ошибки сюда не попадают - они не доходят до сети.
	ErrRequestFailed = errors.New("book_stay: booking request failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_stay: invalid input data")
)

// GuestsOutOfBoundsError возвращается, когда количество гостей вне
// диапазона [1, maxGuests]. Граница venue входит в сообщение, которое
// увидит пользователь.
type GuestsOutOfBoundsError struct {
	MaxGuests int
}

func (e *GuestsOutOfBoundsError) Error() string {
	return fmt.Sprintf("number of guests must be between 1 and %d", e.MaxGuests)
}
