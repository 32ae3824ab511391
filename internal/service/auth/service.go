package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	holidazeClient "github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

const (
	// Аккаунты живут в домене учебного API
	requiredEmailSuffix = "@stud.noroff.no"
	minPasswordLength   = 8
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Service сервис аутентификации. Токен после входа живет только в
// сессии; наружу уходит непрозрачный session ID.
type Service struct {
	client   HolidazeClient
	sessions SessionManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(client HolidazeClient, sessions SessionManager, logger Logger) *Service {
	return &Service{
		client:   client,
		sessions: sessions,
		logger:   logger,
	}
}

// Login выполняет вход и открывает сессию
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: authenticating email=%s", req.Email)

	creds, err := s.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrUnauthorized) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: request failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	sess := s.sessions.Login(creds.Profile.Name, creds.AccessToken, creds.Profile.VenueManager)

	s.logger.Info("Login: opened session for profile=%s manager=%t", creds.Profile.Name, creds.Profile.VenueManager)
	return &LoginResponse{
		SessionID: sess.ID,
		Profile:   creds.Profile,
	}, nil
}

// Register создает новый аккаунт. Вход после регистрации - отдельный
// вызов Login.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if err := validateRegistration(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	s.logger.Info("Register: creating account name=%s manager=%t", req.Name, req.VenueManager)

	profile, err := s.client.Register(ctx, holidazeClient.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		VenueManager: req.VenueManager,
	})
	if err != nil {
		s.logger.Error("Register: request failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return &RegisterResponse{Profile: *profile}, nil
}

// Logout закрывает сессию. Неизвестный session ID - no-op.
func (s *Service) Logout(sessionID string) {
	s.sessions.Logout(sessionID)
	s.logger.Info("Logout: closed session")
}

// validateRegistration проверяет данные регистрации по правилам API
func validateRegistration(req *RegisterRequest) error {
	if !nameRe.MatchString(req.Name) {
		return fmt.Errorf("%w: name may only contain letters, digits and underscores", ErrInvalidInput)
	}
	if !strings.HasSuffix(strings.ToLower(req.Email), requiredEmailSuffix) {
		return fmt.Errorf("%w: email must be a %s address", ErrInvalidInput, requiredEmailSuffix)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
