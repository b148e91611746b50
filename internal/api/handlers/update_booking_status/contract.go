package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
