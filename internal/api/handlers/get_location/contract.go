package get_location

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetLocation(ctx context.Context, id uuid.UUID) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
