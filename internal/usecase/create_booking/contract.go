package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
	GetRentedQuantity(ctx context.Context, itemID uuid.UUID, date time.Time, startMinutes, durationMinutes int) (int, error)
	SetPayment(ctx context.Context, id uuid.UUID, paymentID uuid.UUID) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
}

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

// PaymentGateway интерфейс платежной системы
type PaymentGateway interface {
	GenerateCheckout(orderID string, amount float64) (*liqpay.Checkout, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
