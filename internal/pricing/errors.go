package pricing

import "errors"

var (
	// ErrInvalidAmount возвращается при нечисловой или отрицательной денежной строке
	ErrInvalidAmount = errors.New("pricing: invalid amount format")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("pricing: duration must be positive")

	// ErrInvalidQuantity возвращается при неположительном количестве в позиции корзины
	ErrInvalidQuantity = errors.New("pricing: quantity must be positive")

	// ErrUnknownDepositPolicy возвращается при неизвестной политике предоплаты
	ErrUnknownDepositPolicy = errors.New("pricing: unknown deposit policy")
)
