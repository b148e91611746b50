package get_available_slots

import (
	"time"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// generateSlotGrid генерирует сетку времен начала на день.
// Слоты идут от открытия с фиксированным шагом domain.SlotStepMinutes,
// время начала попадает в сетку, только если бронирование указанной
// длительности целиком помещается до закрытия.
// Если закрытие не позже открытия, сетка пустая
func generateSlotGrid(opening, closing types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0)

	if !opening.IsBefore(closing) {
		return grid, nil
	}

	current := opening
	for current.IsBefore(closing) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец бронирования ушел за полночь - дальше слотов нет
			break
		}
		if slotEnd.IsAfter(closing) {
			break
		}

		grid = append(grid, current)
		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return grid, nil
}

// markAvailability вычисляет флаг доступности для каждого слота сетки.
// Слот занят, если бронирование указанной длительности с этого времени
// пересекается хотя бы с одним активным бронированием.
// Для сегодняшней даты уже прошедшие слоты помечаются недоступными
func markAvailability(
	grid []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	requestDate time.Time,
	now time.Time,
) []Slot {
	today := isSameDay(requestDate, now)
	currentTime := types.NewTimeString(now)

	result := make([]Slot, 0, len(grid))
	for _, start := range grid {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		available := !overlapsActiveBooking(start, end, bookings)
		if today && start.IsBefore(currentTime) {
			available = false
		}

		result = append(result, Slot{
			StartTime: start,
			EndTime:   end,
			Available: available,
		})
	}

	return result
}

// overlapsActiveBooking проверяет пересечение интервала [start, end)
// с активными бронированиями.
// Интервалы пересекаются, только если начало бронирования СТРОГО раньше
// конца слота И конец бронирования СТРОГО позже начала слота:
// граничащие интервалы (11:00-12:00 и 12:00-13:00) не конфликтуют
func overlapsActiveBooking(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(end) && bookingEnd.IsAfter(start) {
			return true
		}
	}
	return false
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
