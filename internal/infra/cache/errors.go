package cache

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик отсутствует или истек
	ErrDraftNotFound = errors.New("cache: draft not found")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("cache: failed to decode value")

	// ErrRedis возвращается при ошибке обращения к redis
	ErrRedis = errors.New("cache: redis operation failed")
)
