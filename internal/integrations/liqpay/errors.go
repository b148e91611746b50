package liqpay

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись callback не совпадает
	ErrInvalidSignature = errors.New("liqpay client: invalid callback signature")

	// ErrInvalidPayload возвращается при некорректном payload callback
	ErrInvalidPayload = errors.New("liqpay client: invalid callback payload")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("liqpay client: internal error")
)
