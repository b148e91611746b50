package get_payment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetPaymentStatus(ctx context.Context, id uuid.UUID) (*models.PaymentStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
