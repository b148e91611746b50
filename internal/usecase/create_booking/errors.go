package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingDisabled возвращается, когда онлайн-бронирование отключено
	ErrBookingDisabled = errors.New("create_booking: booking is disabled")

	// ErrLocationNotFound возвращается, когда локация не найдена или неактивна
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrRentalItemNotFound возвращается, когда позиция аренды не найдена или неактивна
	ErrRentalItemNotFound = errors.New("create_booking: rental item not found")

	// ErrRentalItemUnavailable возвращается, когда запрошенное количество превышает свободный остаток
	ErrRentalItemUnavailable = errors.New("create_booking: rental item quantity unavailable")

	// ErrTooManyRentalLines возвращается при превышении лимита позиций аренды
	ErrTooManyRentalLines = errors.New("create_booking: too many rental lines")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidDuration возвращается при недопустимой длительности бронирования
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrInvalidTimeSlot возвращается, когда время начала не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrOutsideWorkingHours возвращается, когда бронирование не помещается в рабочие часы локации
	ErrOutsideWorkingHours = errors.New("create_booking: booking is outside working hours")

	// ErrSlotNotAvailable возвращается, когда выбранный интервал уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации формы с сообщениями по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: form validation failed: %d field(s)", len(e.Fields))
}
