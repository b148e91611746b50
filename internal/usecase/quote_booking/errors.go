package quote_booking

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена или неактивна
	ErrLocationNotFound = errors.New("quote_booking: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("quote_booking: service not found")

	// ErrRentalItemNotFound возвращается, когда позиция аренды не найдена или неактивна
	ErrRentalItemNotFound = errors.New("quote_booking: rental item not found")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("quote_booking: invalid booking duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
