package profile

import (
	"context"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	GetProfile(ctx context.Context, token, name string) (*domain.Profile, error)
	UpdateAvatar(ctx context.Context, token, name string, avatar holidaze.AvatarInput) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
