package process_payment_callback

import "errors"

var (
	// ErrInvalidSignature возвращается при неверной подписи callback
	ErrInvalidSignature = errors.New("process_payment_callback: invalid signature")

	// ErrInvalidPayload возвращается при некорректном payload callback
	ErrInvalidPayload = errors.New("process_payment_callback: invalid payload")

	// ErrPaymentNotFound возвращается, когда платеж по order_id не найден
	ErrPaymentNotFound = errors.New("process_payment_callback: payment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment_callback: internal error")
)
