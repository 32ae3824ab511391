package book_stay

import (
	"fmt"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/selection"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.ProfileName == "" {
		return fmt.Errorf("%w: profileName is required", ErrInvalidInput)
	}

	if req.Token == "" {
		return ErrUnauthorized
	}

	return nil
}

// commitRange прогоняет сырые клики календаря через машину выбора.
// Ровно два упорядоченных дня - единственный способ получить
// committed-диапазон; одиночный клик и пустой выбор отклоняются.
func commitRange(picks []time.Time) (from, to time.Time, err error) {
	m := selection.New()
	for _, p := range picks {
		m.Pick(p)
	}

	from, to, ok := m.Committed()
	if !ok {
		return time.Time{}, time.Time{}, ErrNoDateRange
	}
	return from, to, nil
}
