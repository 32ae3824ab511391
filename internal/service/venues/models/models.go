package models

import (
	"sort"
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// Request модели

// ListVenuesRequest запрос на постраничный список venue
type ListVenuesRequest struct {
	Limit     int    `json:"limit"`
	Page      int    `json:"page"`
	Sort      string `json:"sort"`
	SortOrder string `json:"sortOrder"`
}

// SearchVenuesRequest запрос поиска venue по имени и описанию
type SearchVenuesRequest struct {
	Query string `json:"q"`
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
}

// VenueData изменяемые поля venue при создании и редактировании
type VenueData struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Media       []domain.Media   `json:"media,omitempty"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Meta        *domain.Meta     `json:"meta,omitempty"`
	Location    *domain.Location `json:"location,omitempty"`
}

// CreateVenueRequest запрос на создание venue менеджером
type CreateVenueRequest struct {
	Token       string    `json:"-"`
	ProfileName string    `json:"profileName"`
	Data        VenueData `json:"data"`
}

// EditVenueRequest запрос на редактирование venue менеджером
type EditVenueRequest struct {
	Token       string    `json:"-"`
	ProfileName string    `json:"profileName"`
	VenueID     string    `json:"venueId"`
	Data        VenueData `json:"data"`
}

// DeleteVenueRequest запрос на удаление venue менеджером
type DeleteVenueRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
	VenueID     string `json:"venueId"`
}

// GetManagedVenuesRequest запрос на список venue менеджера
type GetManagedVenuesRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
}

// Response модели

// VenueResponse полное представление venue.
// DisabledDays - отсортированные дни, занятые существующими
// бронированиями, в формате 2006-01-02; день выселения включен.
type VenueResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Media        []domain.Media  `json:"media,omitempty"`
	Price        float64         `json:"price"`
	MaxGuests    int             `json:"maxGuests"`
	Rating       float64         `json:"rating"`
	Meta         domain.Meta     `json:"meta"`
	Location     domain.Location `json:"location"`
	Owner        string          `json:"owner,omitempty"`
	Created      time.Time       `json:"created"`
	Updated      time.Time       `json:"updated"`
	DisabledDays []string        `json:"disabledDays"`
}

// VenueListResponse страница списка venue
type VenueListResponse struct {
	Venues []VenueResponse       `json:"venues"`
	Meta   domain.PaginationMeta `json:"meta"`
}

// Конвертеры

// FromDomainVenue конвертирует доменный venue в response модель
func FromDomainVenue(v domain.Venue) VenueResponse {
	disabled := v.DisabledDays()
	days := make([]string, 0, len(disabled))
	for day := range disabled {
		days = append(days, day.Format(domain.DateFormat))
	}
	sort.Strings(days)

	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Media:        v.Media,
		Price:        v.Price,
		MaxGuests:    v.MaxGuests,
		Rating:       v.Rating,
		Meta:         v.Meta,
		Location:     v.Location,
		Owner:        v.Owner,
		Created:      v.Created,
		Updated:      v.Updated,
		DisabledDays: days,
	}
}

// FromDomainVenueList конвертирует список venue
func FromDomainVenueList(venues []domain.Venue) []VenueResponse {
	result := make([]VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, FromDomainVenue(v))
	}
	return result
}

// ToClientInput конвертирует данные venue в формат API
func (d VenueData) ToClientInput() holidaze.VenueInput {
	input := holidaze.VenueInput{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		MaxGuests:   d.MaxGuests,
	}

	for _, m := range d.Media {
		input.Media = append(input.Media, holidaze.MediaInput{URL: m.URL, Alt: m.Alt})
	}

	if d.Meta != nil {
		input.Meta = &holidaze.MetaInput{
			Wifi:      d.Meta.Wifi,
			Parking:   d.Meta.Parking,
			Breakfast: d.Meta.Breakfast,
			Pets:      d.Meta.Pets,
		}
	}

	if d.Location != nil {
		input.Location = &holidaze.LocationInput{
			Address:   d.Location.Address,
			City:      d.Location.City,
			Zip:       d.Location.Zip,
			Country:   d.Location.Country,
			Continent: d.Location.Continent,
			Lat:       d.Location.Lat,
			Lng:       d.Location.Lng,
		}
	}

	return input
}
