package list_venues

import (
	"context"

	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

type VenuesService interface {
	List(ctx context.Context, req *venueModels.ListVenuesRequest) (*venueModels.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
