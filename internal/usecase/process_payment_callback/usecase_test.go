package process_payment_callback

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	paymentRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/payment"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
)

type fakePaymentRepo struct {
	payment *domain.Payment

	markedPaid    bool
	providerTxnID string
	markedFailed  bool
	failureReason string
}

func (f *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if f.payment == nil || f.payment.OrderID != orderID {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) MarkPaid(ctx context.Context, id uuid.UUID, providerTxnID, providerStatus string, paidAt time.Time) error {
	f.markedPaid = true
	f.providerTxnID = providerTxnID
	return nil
}

func (f *fakePaymentRepo) MarkFailed(ctx context.Context, id uuid.UUID, providerStatus, reason string) error {
	f.markedFailed = true
	f.failureReason = reason
	return nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	f.booking.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	uc       *UseCase
	payments *fakePaymentRepo
	bookings *fakeBookingRepo
	client   *liqpay.Client
}

func newTestEnv(paymentStatus domain.PaymentStatus, bookingStatus domain.BookingStatus) *testEnv {
	bookingID := uuid.New()

	env := &testEnv{
		payments: &fakePaymentRepo{payment: &domain.Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			OrderID:   "order-1",
			Amount:    420,
			Currency:  "UAH",
			Status:    paymentStatus,
		}},
		bookings: &fakeBookingRepo{booking: &domain.Booking{
			ID:     bookingID,
			Status: bookingStatus,
		}},
		client: liqpay.NewClient(liqpay.Config{
			PublicKey:  "pub_test",
			PrivateKey: "priv_test",
			Sandbox:    true,
		}, nopLogger{}),
	}

	env.uc = NewUseCase(env.payments, env.bookings, env.client, fakeTxManager{}, nopLogger{})
	return env
}

// signedCallback кодирует payload и подписывает его приватным ключом клиента
func (env *testEnv) signedCallback(t *testing.T, payload map[string]interface{}) (string, string) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	data := base64.StdEncoding.EncodeToString(raw)
	return data, env.client.Sign(data)
}

func TestExecute_PaidCallback(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusPendingPayment)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id":   "order-1",
		"status":     liqpay.StatusSuccess,
		"amount":     420,
		"currency":   "UAH",
		"payment_id": 12345,
	})

	require.NoError(t, env.uc.Execute(context.Background(), data, signature))

	assert.True(t, env.payments.markedPaid)
	assert.Equal(t, "12345", env.payments.providerTxnID)
	assert.Equal(t, domain.StatusPaid, env.bookings.booking.Status)
}

func TestExecute_FailedCallback(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusPendingPayment)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id":        "order-1",
		"status":          liqpay.StatusFailure,
		"err_description": "картку відхилено",
	})

	require.NoError(t, env.uc.Execute(context.Background(), data, signature))

	assert.True(t, env.payments.markedFailed)
	assert.Equal(t, "картку відхилено", env.payments.failureReason)
	assert.False(t, env.payments.markedPaid)
	// Бронирование остается в ожидании оплаты
	assert.Equal(t, domain.StatusPendingPayment, env.bookings.booking.Status)
}

func TestExecute_InvalidSignature(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusPendingPayment)

	data, _ := env.signedCallback(t, map[string]interface{}{
		"order_id": "order-1",
		"status":   liqpay.StatusSuccess,
	})

	err := env.uc.Execute(context.Background(), data, "forged")
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.False(t, env.payments.markedPaid)
}

func TestExecute_UnknownOrder(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusPendingPayment)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id": "unknown-order",
		"status":   liqpay.StatusSuccess,
	})

	err := env.uc.Execute(context.Background(), data, signature)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestExecute_RepeatedCallbackIsIdempotent(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPaid, domain.StatusPaid)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id": "order-1",
		"status":   liqpay.StatusSuccess,
	})

	require.NoError(t, env.uc.Execute(context.Background(), data, signature))

	// Платеж уже в терминальном статусе, повтор ничего не меняет
	assert.False(t, env.payments.markedPaid)
	assert.False(t, env.payments.markedFailed)
}

func TestExecute_IntermediateStatusIsSkipped(t *testing.T) {
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusPendingPayment)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id": "order-1",
		"status":   "processing",
	})

	require.NoError(t, env.uc.Execute(context.Background(), data, signature))

	assert.False(t, env.payments.markedPaid)
	assert.False(t, env.payments.markedFailed)
	assert.Equal(t, domain.StatusPendingPayment, env.bookings.booking.Status)
}

func TestExecute_PaidAfterCancellation(t *testing.T) {
	// Администратор отменил бронирование до прихода callback
	env := newTestEnv(domain.PaymentStatusPending, domain.StatusCancelled)

	data, signature := env.signedCallback(t, map[string]interface{}{
		"order_id":   "order-1",
		"status":     liqpay.StatusSuccess,
		"payment_id": 777,
	})

	require.NoError(t, env.uc.Execute(context.Background(), data, signature))

	// Платеж фиксируется, но статус бронирования не меняется
	assert.True(t, env.payments.markedPaid)
	assert.Equal(t, domain.StatusCancelled, env.bookings.booking.Status)
}
