package create_booking

import (
	"context"

	bookStay "github.com/mariusjb/holidaze-gateway/internal/usecase/book_stay"
)

type BookStayUseCase interface {
	Execute(ctx context.Context, req *bookStay.Request) (*bookStay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
