package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// VenueInput данные для создания или редактирования venue.
// Указатели - опциональные поля; nil не отправляется в API.
type VenueInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Media       []MediaInput   `json:"media,omitempty"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Meta        *MetaInput     `json:"meta,omitempty"`
	Location    *LocationInput `json:"location,omitempty"`
}

// MediaInput элемент галереи venue
type MediaInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// MetaInput флаги удобств venue
type MetaInput struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationInput адрес venue
type LocationInput struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// ListVenues получает страницу списка venues с сортировкой
func (c *Client) ListVenues(ctx context.Context, limit, page int, sort, sortOrder string) ([]domain.Venue, domain.PaginationMeta, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))
	query.Set("sort", sort)
	query.Set("sortOrder", sortOrder)

	var resp struct {
		Data []venueDTO        `json:"data"`
		Meta paginationMetaDTO `json:"meta"`
	}
	if err := c.do(ctx, "ListVenues", http.MethodGet, "/holidaze/venues", query, "", nil, &resp); err != nil {
		return nil, domain.PaginationMeta{}, err
	}

	return venuesToDomain(resp.Data), resp.Meta.toDomain(), nil
}

// GetVenue получает venue по ID вместе с его бронированиями
func (c *Client) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	query := url.Values{}
	query.Set("_bookings", "true")

	var resp struct {
		Data venueDTO `json:"data"`
	}
	if err := c.do(ctx, "GetVenue", http.MethodGet, "/holidaze/venues/"+url.PathEscape(id), query, "", nil, &resp); err != nil {
		return nil, err
	}

	venue := resp.Data.toDomain()
	return &venue, nil
}

// SearchVenues ищет venues по строке запроса. Контекст используется для
// отмены устаревшего запроса при вводе нового (last request wins).
func (c *Client) SearchVenues(ctx context.Context, q string, limit, page int) ([]domain.Venue, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	var resp struct {
		Data []venueDTO `json:"data"`
	}
	if err := c.do(ctx, "SearchVenues", http.MethodGet, "/holidaze/venues/search", query, "", nil, &resp); err != nil {
		return nil, err
	}

	return venuesToDomain(resp.Data), nil
}

// CreateVenue создает новый venue (только для venue manager)
func (c *Client) CreateVenue(ctx context.Context, token string, input VenueInput) (*domain.Venue, error) {
	var resp struct {
		Data venueDTO `json:"data"`
	}
	if err := c.do(ctx, "CreateVenue", http.MethodPost, "/holidaze/venues", nil, token, input, &resp); err != nil {
		return nil, err
	}

	venue := resp.Data.toDomain()
	c.log.Info("CreateVenue: created venue id=%s name=%s", venue.ID, venue.Name)
	return &venue, nil
}

// EditVenue обновляет существующий venue
func (c *Client) EditVenue(ctx context.Context, token, id string, input VenueInput) (*domain.Venue, error) {
	var resp struct {
		Data venueDTO `json:"data"`
	}
	if err := c.do(ctx, "EditVenue", http.MethodPut, "/holidaze/venues/"+url.PathEscape(id), nil, token, input, &resp); err != nil {
		return nil, err
	}

	venue := resp.Data.toDomain()
	return &venue, nil
}

// DeleteVenue удаляет venue по ID. Успешный ответ - 204 без тела.
func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	return c.do(ctx, "DeleteVenue", http.MethodDelete, "/holidaze/venues/"+url.PathEscape(id), nil, token, nil, nil)
}

// GetManagedVenues получает venues профиля вместе с их бронированиями
// (для manager-представления: _bookings=true&_owner=true)
func (c *Client) GetManagedVenues(ctx context.Context, token, profileName string) ([]domain.Venue, error) {
	query := url.Values{}
	query.Set("_bookings", "true")
	query.Set("_owner", "true")

	var resp struct {
		Data []venueDTO `json:"data"`
	}
	path := "/holidaze/profiles/" + url.PathEscape(profileName) + "/venues"
	if err := c.do(ctx, "GetManagedVenues", http.MethodGet, path, query, token, nil, &resp); err != nil {
		return nil, err
	}

	return venuesToDomain(resp.Data), nil
}
