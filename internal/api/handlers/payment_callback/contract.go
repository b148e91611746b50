package payment_callback

import "context"

type ProcessPaymentCallbackUseCase interface {
	Execute(ctx context.Context, data, signature string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
