package catalog

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidCategory возвращается при неизвестной категории аренды
	ErrInvalidCategory = errors.New("invalid rental category")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
