package login

import (
	"context"

	authService "github.com/mariusjb/holidaze-gateway/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, req *authService.LoginRequest) (*authService.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
