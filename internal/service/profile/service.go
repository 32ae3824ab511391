package profile

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// Service сервис профиля: просмотр и смена аватара.
// Профиль живет в удаленном API, локально ничего не хранится.
type Service struct {
	client HolidazeClient
	logger Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(client HolidazeClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Get получает профиль по имени
func (s *Service) Get(ctx context.Context, req *GetProfileRequest) (*ProfileResponse, error) {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("Get: %v", err)
		return nil, err
	}

	s.logger.Info("Get: fetching profile name=%s", req.ProfileName)

	p, err := s.client.GetProfile(ctx, req.Token, req.ProfileName)
	if err != nil {
		return nil, s.mapClientError("Get", req.ProfileName, err)
	}

	resp := fromDomainProfile(*p)
	return &resp, nil
}

// UpdateAvatar меняет аватар профиля. URL должен быть абсолютным и
// публично доступным - API отклоняет недостижимые ссылки.
func (s *Service) UpdateAvatar(ctx context.Context, req *UpdateAvatarRequest) (*ProfileResponse, error) {
	if err := requireAuth(req.Token, req.ProfileName); err != nil {
		s.logger.Warn("UpdateAvatar: %v", err)
		return nil, err
	}
	if err := validateAvatarURL(req.URL); err != nil {
		s.logger.Warn("UpdateAvatar: invalid url for profile=%s: %v", req.ProfileName, err)
		return nil, err
	}

	s.logger.Info("UpdateAvatar: updating avatar for profile=%s", req.ProfileName)

	p, err := s.client.UpdateAvatar(ctx, req.Token, req.ProfileName, holidazeClient.AvatarInput{
		URL: req.URL,
		Alt: req.Alt,
	})
	if err != nil {
		return nil, s.mapClientError("UpdateAvatar", req.ProfileName, err)
	}

	s.logger.Info("UpdateAvatar: updated avatar for profile=%s", req.ProfileName)
	resp := fromDomainProfile(*p)
	return &resp, nil
}

// mapClientError переводит ошибки клиента API в ошибки сервиса
func (s *Service) mapClientError(op, profileName string, err error) error {
	switch {
	case errors.Is(err, holidazeClient.ErrUnauthorized):
		s.logger.Warn("%s: unauthorized for profile=%s", op, profileName)
		return ErrUnauthorized
	case errors.Is(err, holidazeClient.ErrNotFound):
		s.logger.Warn("%s: profile=%s not found", op, profileName)
		return ErrProfileNotFound
	default:
		s.logger.Error("%s: request failed for profile=%s: %v", op, profileName, err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

// validateAvatarURL проверяет, что ссылка абсолютная http(s)
func validateAvatarURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: url must be an absolute http(s) link", ErrInvalidInput)
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
