package process_payment_callback

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
	paymentRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/payment"
)

// UseCase use case обработки server-to-server callback платежной системы.
// Повторные callback по уже обработанному платежу идемпотентны
type UseCase struct {
	paymentRepo  PaymentRepository
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет подпись, расшифровывает callback и обновляет платеж с бронированием
func (uc *UseCase) Execute(ctx context.Context, data, signature string) error {
	// 1. Проверяем подпись до любой обработки
	if err := uc.gateway.VerifyCallback(data, signature); err != nil {
		uc.logger.Warn("ProcessPaymentCallback: signature verification failed")
		return ErrInvalidSignature
	}

	// 2. Расшифровываем payload
	callback, err := uc.gateway.DecodeCallback(data)
	if err != nil {
		uc.logger.Warn("ProcessPaymentCallback: failed to decode callback: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	uc.logger.Info("ProcessPaymentCallback: order_id=%s, status=%s", callback.OrderID, callback.Status)

	// 3. Находим платеж по order_id
	payment, err := uc.paymentRepo.GetByOrderID(ctx, callback.OrderID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("ProcessPaymentCallback: payment for order_id=%s not found", callback.OrderID)
			return ErrPaymentNotFound
		}
		uc.logger.Error("ProcessPaymentCallback: failed to get payment: %v", err)
		return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 4. Уже обработанный платеж не трогаем
	if payment.Status.IsFinal() {
		uc.logger.Info("ProcessPaymentCallback: payment id=%s already in status %s, skipping", payment.ID, payment.Status)
		return nil
	}

	// 5. Промежуточные статусы (processing, wait_secure и т.п.) просто логируем
	if !callback.IsPaid() && !callback.IsFailed() {
		uc.logger.Info("ProcessPaymentCallback: intermediate status %s for payment id=%s", callback.Status, payment.ID)
		return nil
	}

	// 6. Обновляем платеж и бронирование атомарно
	return uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if callback.IsPaid() {
			return uc.applyPaid(txCtx, payment, callback)
		}
		return uc.applyFailed(txCtx, payment, callback)
	})
}

func (uc *UseCase) applyPaid(ctx context.Context, payment *domain.Payment, callback *liqpay.Callback) error {
	providerTxnID := strconv.FormatInt(callback.PaymentID, 10)
	if err := uc.paymentRepo.MarkPaid(ctx, payment.ID, providerTxnID, callback.Status, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("ProcessPaymentCallback: failed to mark payment id=%s paid: %v", payment.ID, err)
		return fmt.Errorf("%w: failed to mark payment paid: %v", ErrInternal, err)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		uc.logger.Error("ProcessPaymentCallback: failed to get booking id=%s: %v", payment.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Бронирование могло быть отменено администратором до оплаты
	if !booking.CanTransitionTo(domain.StatusPaid) {
		uc.logger.Warn("ProcessPaymentCallback: booking id=%s in status %s, cannot mark paid", booking.ID, booking.Status)
		return nil
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusPaid); err != nil {
		uc.logger.Error("ProcessPaymentCallback: failed to update booking id=%s status: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessPaymentCallback: booking id=%s marked paid", booking.ID)
	return nil
}

func (uc *UseCase) applyFailed(ctx context.Context, payment *domain.Payment, callback *liqpay.Callback) error {
	reason := callback.ErrDescription
	if reason == "" {
		reason = callback.Status
	}
	if err := uc.paymentRepo.MarkFailed(ctx, payment.ID, callback.Status, reason); err != nil {
		uc.logger.Error("ProcessPaymentCallback: failed to mark payment id=%s failed: %v", payment.ID, err)
		return fmt.Errorf("%w: failed to mark payment failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ProcessPaymentCallback: payment id=%s marked failed: %s", payment.ID, reason)
	return nil
}
