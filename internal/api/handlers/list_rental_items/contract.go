package list_rental_items

import (
	"context"

	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListRentalItems(ctx context.Context, category *string) (*models.RentalItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
