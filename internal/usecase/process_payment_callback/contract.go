package process_payment_callback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id uuid.UUID, providerTxnID, providerStatus string, paidAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, providerStatus, reason string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// PaymentGateway интерфейс проверки callback платежной системы
type PaymentGateway interface {
	VerifyCallback(data, signature string) error
	DecodeCallback(data string) (*liqpay.Callback, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
