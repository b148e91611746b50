package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActiveLocations(ctx context.Context) ([]*domain.Location, error)
	GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	ListActiveServices(ctx context.Context) ([]*domain.AdditionalService, error)
	ListActiveRentalItems(ctx context.Context, category *domain.RentalCategory) ([]*domain.RentalItem, error)
}

// Cache интерфейс кеша справочных данных
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
