package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending" // ожидает оплаты
	PaymentStatusPaid    PaymentStatus = "paid"    // успешно оплачен
	PaymentStatusFailed  PaymentStatus = "failed"  // отклонен или ошибка
)

// Payment платеж предоплаты за бронирование
type Payment struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	// OrderID внешний идентификатор заказа, передаваемый платежной системе
	OrderID          string
	Amount           float64
	Currency         string
	Status           PaymentStatus
	ProviderTxnID    *string
	ProviderStatus   *string
	FailureReason    *string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsFinal true, если платеж уже в терминальном статусе
func (p PaymentStatus) IsFinal() bool {
	return p == PaymentStatusPaid || p == PaymentStatusFailed
}
