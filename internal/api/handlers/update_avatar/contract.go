package update_avatar

import (
	"context"

	profileService "github.com/mariusjb/holidaze-gateway/internal/service/profile"
)

type ProfileService interface {
	UpdateAvatar(ctx context.Context, req *profileService.UpdateAvatarRequest) (*profileService.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
