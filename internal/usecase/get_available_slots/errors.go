package get_available_slots

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена или неактивна
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidDuration возвращается при недопустимой длительности бронирования
	ErrInvalidDuration = errors.New("invalid booking duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
