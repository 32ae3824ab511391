package create_venue

import (
	"context"

	venueModels "github.com/mariusjb/holidaze-gateway/internal/service/venues/models"
)

type VenuesService interface {
	Create(ctx context.Context, req *venueModels.CreateVenueRequest) (*venueModels.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
