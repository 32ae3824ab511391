package get_profile

import (
	"context"

	profileService "github.com/mariusjb/holidaze-gateway/internal/service/profile"
)

type ProfileService interface {
	Get(ctx context.Context, req *profileService.GetProfileRequest) (*profileService.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
