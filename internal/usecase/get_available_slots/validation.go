package get_available_slots

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID == uuid.Nil {
		return fmt.Errorf("%w: locationID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}

	return nil
}

// validateDuration проверяет длительность по настройкам бронирования.
// Длительность задается с шагом полчаса
func validateDuration(durationHours float64, settings *domain.BookingSettings) error {
	halves := durationHours / domain.DurationGranularityHours
	if math.Abs(halves-math.Round(halves)) > 1e-9 {
		return fmt.Errorf("%w: duration must be a multiple of %.1f hours", ErrInvalidDuration, domain.DurationGranularityHours)
	}

	if durationHours < settings.MinBookingHours {
		return fmt.Errorf("%w: minimum duration is %.1f hours", ErrInvalidDuration, settings.MinBookingHours)
	}

	if durationHours > settings.MaxBookingHours {
		return fmt.Errorf("%w: maximum duration is %.1f hours", ErrInvalidDuration, settings.MaxBookingHours)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает горизонт бронирования
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
