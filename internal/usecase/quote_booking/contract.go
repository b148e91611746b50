package quote_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// CatalogRepository интерфейс каталога локаций, услуг и аренды
type CatalogRepository interface {
	GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	GetActiveServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.AdditionalService, error)
	GetActiveRentalItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.RentalItem, error)
}

// SettingsProvider интерфейс доступа к настройкам бронирования
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
