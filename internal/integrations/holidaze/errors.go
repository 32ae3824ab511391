package holidaze

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенный ресурс (venue, profile,
	// booking) отсутствует на стороне API
	ErrNotFound = errors.New("holidaze client: resource not found")

	// ErrUnauthorized возвращается при отсутствующем или недействительном
	// Bearer-токене
	ErrUnauthorized = errors.New("holidaze client: unauthorized")

	// ErrRequestFailed возвращается при сетевой ошибке или не-2xx ответе API
	ErrRequestFailed = errors.New("holidaze client: request failed")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("holidaze client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaze client: internal error")
)
