package register

import (
	"context"

	authService "github.com/mariusjb/holidaze-gateway/internal/service/auth"
)

type AuthService interface {
	Register(ctx context.Context, req *authService.RegisterRequest) (*authService.RegisterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
