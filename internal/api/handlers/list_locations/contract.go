package list_locations

import (
	"context"

	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListLocations(ctx context.Context) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
