package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByLocationWithFilter получает бронирования локации по фильтру
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога локаций
type CatalogRepository interface {
	GetActiveLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error)
}

// SettingsProvider интерфейс доступа к настройкам бронирования
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
