package book_stay

import (
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// Request модель запроса на бронирование проживания
type Request struct {
	Token       string      // Access token текущей сессии
	ProfileName string      // Имя профиля, от которого делается бронирование
	VenueID     string      // ID venue
	Picks       []time.Time // Выбранные даты (две даты в любом порядке)
	Guests      int         // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking    domain.Booking // Созданное бронирование с привязанным venue
	Nights     int            // Количество ночей
	TotalPrice float64        // Итоговая стоимость (ночи * цена за ночь)
}
