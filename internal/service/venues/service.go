package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/search"
	"github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

// Service сервис каталога venue: постраничный список, деталка с
// занятыми днями, поиск и управление venue менеджера
type Service struct {
	client     HolidazeClient
	searcher   Searcher
	venueStore VenueStore
	managed    ManagedVenueStore
	logger     Logger
}

// NewService создает новый экземпляр сервиса venue
func NewService(
	client HolidazeClient,
	searcher Searcher,
	venueStore VenueStore,
	managed ManagedVenueStore,
	logger Logger,
) *Service {
	return &Service{
		client:     client,
		searcher:   searcher,
		venueStore: venueStore,
		managed:    managed,
		logger:     logger,
	}
}

// List получает страницу списка venue, по умолчанию новые первыми
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultVenueListLimit
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	sortField := req.Sort
	if sortField == "" {
		sortField = domain.DefaultVenueListSort
	}
	sortOrder := req.SortOrder
	if sortOrder == "" {
		sortOrder = domain.DefaultVenueListOrder
	}

	s.logger.Info("List: fetching venues page=%d limit=%d sort=%s %s", page, limit, sortField, sortOrder)

	venues, meta, err := s.client.ListVenues(ctx, limit, page, sortField, sortOrder)
	if err != nil {
		s.logger.Error("List: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	s.logger.Info("List: fetched %d venues, page %d of %d", len(venues), meta.CurrentPage, meta.PageCount)
	return &models.VenueListResponse{
		Venues: models.FromDomainVenueList(venues),
		Meta:   meta,
	}, nil
}

// Get получает venue с его бронированиями и кэширует его.
// Занятые дни в ответе выводятся из бронирований; день выселения
// считается занятым.
func (s *Service) Get(ctx context.Context, id string) (*models.VenueResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	s.logger.Info("Get: fetching venue id=%s", id)

	venue, err := s.client.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrNotFound) {
			s.logger.Warn("Get: venue id=%s not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Get: failed to get venue id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	s.venueStore.Put(*venue)

	resp := models.FromDomainVenue(*venue)
	return &resp, nil
}

// Search ищет venue по имени и описанию. Действует политика
// last request wins: результат, перекрытый более новым запросом,
// никогда не возвращается.
func (s *Service) Search(ctx context.Context, req *models.SearchVenuesRequest) (*models.VenueListResponse, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	venues, err := s.searcher.Search(ctx, q, limit, page)
	if err != nil {
		if errors.Is(err, search.ErrSuperseded) {
			return nil, ErrSearchSuperseded
		}
		s.logger.Error("Search: query %q failed: %v", q, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return &models.VenueListResponse{
		Venues: models.FromDomainVenueList(venues),
	}, nil
}

// GetManaged получает venue менеджера с их бронированиями и замещает
// локальную коллекцию свежим списком
func (s *Service) GetManaged(ctx context.Context, req *models.GetManagedVenuesRequest) (*models.VenueListResponse, error) {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("GetManaged: %v", err)
		return nil, err
	}

	s.logger.Info("GetManaged: fetching venues for profile=%s", req.ProfileName)

	venues, err := s.client.GetManagedVenues(ctx, req.Token, req.ProfileName)
	if err != nil {
		return nil, s.mapClientError("GetManaged", err)
	}

	s.managed.Put(req.ProfileName, venues)

	return &models.VenueListResponse{
		Venues: models.FromDomainVenueList(venues),
	}, nil
}

// Create создает venue менеджера. При успехе новый venue сразу
// появляется в локальной коллекции, без перезагрузки списка.
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}
	if err := validateVenueData(&req.Data); err != nil {
		s.logger.Warn("Create: validation failed for profile=%s: %v", req.ProfileName, err)
		return nil, err
	}

	s.logger.Info("Create: creating venue %q for profile=%s", req.Data.Name, req.ProfileName)

	created, err := s.client.CreateVenue(ctx, req.Token, req.Data.ToClientInput())
	if err != nil {
		return nil, s.mapClientError("Create", err)
	}

	s.managed.Add(req.ProfileName, *created)
	s.venueStore.Put(*created)

	s.logger.Info("Create: created venue id=%s for profile=%s", created.ID, req.ProfileName)
	resp := models.FromDomainVenue(*created)
	return &resp, nil
}

// Edit редактирует venue менеджера и реконсилирует локальные коллекции.
// Бронирования из кэша сохраняются - ответ редактирования их не несет.
func (s *Service) Edit(ctx context.Context, req *models.EditVenueRequest) (*models.VenueResponse, error) {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Edit: %v", err)
		return nil, err
	}
	if req.VenueID == "" {
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if err := validateVenueData(&req.Data); err != nil {
		s.logger.Warn("Edit: validation failed for venue=%s: %v", req.VenueID, err)
		return nil, err
	}

	s.logger.Info("Edit: editing venue id=%s for profile=%s", req.VenueID, req.ProfileName)

	updated, err := s.client.EditVenue(ctx, req.Token, req.VenueID, req.Data.ToClientInput())
	if err != nil {
		return nil, s.mapClientError("Edit", err)
	}

	if cached, ok := s.venueStore.Get(req.VenueID); ok && len(updated.Bookings) == 0 {
		updated.Bookings = cached.Bookings
	}
	s.managed.Update(req.ProfileName, *updated)
	s.venueStore.Put(*updated)

	s.logger.Info("Edit: updated venue id=%s", req.VenueID)
	resp := models.FromDomainVenue(*updated)
	return &resp, nil
}

// Delete удаляет venue менеджера. Один сетевой вызов; при успехе venue
// исчезает из локальной коллекции и кэша.
func (s *Service) Delete(ctx context.Context, req *models.DeleteVenueRequest) error {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	s.logger.Info("Delete: deleting venue id=%s for profile=%s", req.VenueID, req.ProfileName)

	if err := s.client.DeleteVenue(ctx, req.Token, req.VenueID); err != nil {
		return s.mapClientError("Delete", err)
	}

	s.managed.Remove(req.ProfileName, req.VenueID)
	s.venueStore.Remove(req.VenueID)

	s.logger.Info("Delete: deleted venue id=%s", req.VenueID)
	return nil
}

// Вспомогательные методы

// mapClientError переводит ошибки клиента API в ошибки сервиса
func (s *Service) mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, holidazeClient.ErrUnauthorized):
		s.logger.Warn("%s: unauthorized", op)
		return ErrUnauthorized
	case errors.Is(err, holidazeClient.ErrNotFound):
		s.logger.Warn("%s: not found", op)
		return ErrVenueNotFound
	default:
		s.logger.Error("%s: request failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

// validateVenueData валидирует изменяемые поля venue
func validateVenueData(d *models.VenueData) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(d.Name) > domain.MaxVenueNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxVenueNameLength)
	}
	if len(d.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if d.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if d.MaxGuests < domain.MinGuests {
		return fmt.Errorf("%w: maxGuests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	return nil
}

// requireAuth проверяет обязательные поля авторизованного запроса
func requireAuth(token, profileName string) error {
	if profileName == "" {
		return fmt.Errorf("%w: profileName is required", ErrInvalidInput)
	}
	if token == "" {
		return ErrUnauthorized
	}
	return nil
}
