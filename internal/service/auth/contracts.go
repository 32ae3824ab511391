package auth

import (
	"context"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
	"github.com/mariusjb/holidaze-gateway/internal/session"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	Login(ctx context.Context, email, password string) (*holidaze.Credentials, error)
	Register(ctx context.Context, input holidaze.RegisterInput) (*domain.Profile, error)
}

// SessionManager интерфейс таблицы сессий
type SessionManager interface {
	Login(profileName, accessToken string, venueManager bool) session.Session
	Logout(id string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
