package holidaze

import (
	"time"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// Wire-модели Holidaze API v2. Все ответы завернуты в конверт
// {"data": ..., "meta": ...}; даты приходят строками в RFC 3339.

type mediaDTO struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type metaDTO struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type locationDTO struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type ownerDTO struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Bio    string   `json:"bio"`
	Avatar mediaDTO `json:"avatar"`
}

type venueDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Media       []mediaDTO   `json:"media"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Rating      float64      `json:"rating"`
	Created     time.Time    `json:"created"`
	Updated     time.Time    `json:"updated"`
	Meta        metaDTO      `json:"meta"`
	Location    locationDTO  `json:"location"`
	Owner       *ownerDTO    `json:"owner,omitempty"`
	Bookings    []bookingDTO `json:"bookings,omitempty"`
}

type bookingDTO struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Venue    *venueDTO `json:"venue,omitempty"`
}

type profileDTO struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Bio          string   `json:"bio"`
	Avatar       mediaDTO `json:"avatar"`
	Banner       mediaDTO `json:"banner"`
	VenueManager bool     `json:"venueManager"`
	Count        *struct {
		Venues   int `json:"venues"`
		Bookings int `json:"bookings"`
	} `json:"_count,omitempty"`
}

type paginationMetaDTO struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// ErrorResponse модель ошибки Holidaze API
type ErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// Credentials результат успешного входа: профиль и его accessToken
type Credentials struct {
	Profile     domain.Profile
	AccessToken string
}

func (d *venueDTO) toDomain() domain.Venue {
	v := domain.Venue{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		MaxGuests:   d.MaxGuests,
		Rating:      d.Rating,
		Created:     d.Created,
		Updated:     d.Updated,
		Meta: domain.Meta{
			Wifi:      d.Meta.Wifi,
			Parking:   d.Meta.Parking,
			Breakfast: d.Meta.Breakfast,
			Pets:      d.Meta.Pets,
		},
		Location: domain.Location{
			Address:   d.Location.Address,
			City:      d.Location.City,
			Zip:       d.Location.Zip,
			Country:   d.Location.Country,
			Continent: d.Location.Continent,
			Lat:       d.Location.Lat,
			Lng:       d.Location.Lng,
		},
	}
	for _, m := range d.Media {
		v.Media = append(v.Media, domain.Media{URL: m.URL, Alt: m.Alt})
	}
	if d.Owner != nil {
		v.Owner = d.Owner.Name
	}
	for i := range d.Bookings {
		b := d.Bookings[i].toDomain()
		b.VenueID = d.ID
		v.Bookings = append(v.Bookings, b)
	}
	return v
}

func (d *bookingDTO) toDomain() domain.Booking {
	b := domain.Booking{
		ID:       d.ID,
		DateFrom: d.DateFrom,
		DateTo:   d.DateTo,
		Guests:   d.Guests,
		Created:  d.Created,
		Updated:  d.Updated,
	}
	if d.Venue != nil {
		v := d.Venue.toDomain()
		b.Venue = &v
		b.VenueID = v.ID
	}
	return b
}

func (d *profileDTO) toDomain() domain.Profile {
	p := domain.Profile{
		Name:         d.Name,
		Email:        d.Email,
		Bio:          d.Bio,
		Avatar:       domain.Media{URL: d.Avatar.URL, Alt: d.Avatar.Alt},
		Banner:       domain.Media{URL: d.Banner.URL, Alt: d.Banner.Alt},
		VenueManager: d.VenueManager,
	}
	if d.Count != nil {
		p.VenueCount = d.Count.Venues
		p.BookingCount = d.Count.Bookings
	}
	return p
}

func (d *paginationMetaDTO) toDomain() domain.PaginationMeta {
	return domain.PaginationMeta{
		IsFirstPage:  d.IsFirstPage,
		IsLastPage:   d.IsLastPage,
		CurrentPage:  d.CurrentPage,
		PreviousPage: d.PreviousPage,
		NextPage:     d.NextPage,
		PageCount:    d.PageCount,
		TotalCount:   d.TotalCount,
	}
}

func venuesToDomain(dtos []venueDTO) []domain.Venue {
	venues := make([]domain.Venue, 0, len(dtos))
	for i := range dtos {
		venues = append(venues, dtos[i].toDomain())
	}
	return venues
}
