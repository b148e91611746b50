package settings

import "errors"

var (
	// ErrInvalidSettings возвращается при недопустимых значениях настроек
	ErrInvalidSettings = errors.New("invalid booking settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
