package create_booking

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID == uuid.Nil {
		return fmt.Errorf("%w: locationID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}

	for _, line := range req.RentalLines {
		if line.ItemID == uuid.Nil {
			return fmt.Errorf("%w: rental line item id is required", ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: rental line quantity must be positive", ErrInvalidInput)
		}
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
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает горизонт бронирования
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateWorkingHours проверяет, что бронирование целиком помещается
// в рабочие часы локации и время начала попадает в часовую сетку слотов
func validateWorkingHours(location *domain.Location, startTime types.TimeString, durationMinutes int) error {
	openingMinutes, err := location.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid opening time: %v", ErrInternal, err)
	}
	closingMinutes, err := location.ClosingTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid closing time: %v", ErrInternal, err)
	}
	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if startMinutes < openingMinutes || startMinutes+durationMinutes > closingMinutes {
		return ErrOutsideWorkingHours
	}

	if (startMinutes-openingMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time must be aligned to %d-minute grid", ErrInvalidTimeSlot, domain.SlotStepMinutes)
	}

	return nil
}

// validateRentalLineLimits проверяет лимиты количества позиций аренды по категориям
func validateRentalLineLimits(lines []domain.CartLine, items map[uuid.UUID]*domain.RentalItem) error {
	clothingLines := 0
	propLines := 0

	for _, line := range lines {
		item, ok := items[line.ItemID]
		if !ok {
			return ErrRentalItemNotFound
		}
		switch item.Category {
		case domain.CategoryClothing:
			clothingLines++
		case domain.CategoryProp:
			propLines++
		}
	}

	if clothingLines > domain.MaxClothingLines {
		return fmt.Errorf("%w: at most %d clothing lines", ErrTooManyRentalLines, domain.MaxClothingLines)
	}
	if propLines > domain.MaxPropLines {
		return fmt.Errorf("%w: at most %d prop lines", ErrTooManyRentalLines, domain.MaxPropLines)
	}

	return nil
}

// validateStartNotPast проверяет, что бронирование на сегодня не начинается в прошлом
func validateStartNotPast(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}
	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: start time is in the past", ErrInvalidTimeSlot)
	}
	return nil
}

// hasOverlappingBooking проверяет пересечение интервала бронирования
// с активными бронированиями (строгие неравенства, границы не конфликтуют)
func hasOverlappingBooking(
	startTime types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) (bool, error) {
	end, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(end) && bookingEnd.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
