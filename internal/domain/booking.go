package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusPaid           BookingStatus = "paid"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// ActiveStatuses статусы, при которых бронирование занимает слот.
// Используются при подсчёте пересечений и проверке доступности.
var ActiveStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusPaid,
	StatusConfirmed,
}

// ParseBookingStatus валидирует строковый статус
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPendingPayment, StatusPaid, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking бронирование фотостудии
type Booking struct {
	ID         uuid.UUID
	LocationID uuid.UUID

	// Контактные данные клиента (нормализованные)
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       *string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int

	// Денормализованный снимок цен на момент бронирования.
	// Последующие изменения каталога не меняют историю.
	BasePricePerHour  float64
	ServicesTotal     float64
	RentalTotal       float64
	TotalAmount       float64
	DepositAmount     float64
	DepositPercentage float64
	DepositPolicy     DepositPolicy

	PaymentID *uuid.UUID

	Status     BookingStatus
	Notes      *string
	AdminNotes *string

	ServiceIDs  []uuid.UUID
	RentalLines []BookingRentalLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingRentalLine позиция аренды (одежда или реквизит) внутри бронирования
type BookingRentalLine struct {
	ItemID         uuid.UUID
	ItemName       string
	Category       RentalCategory
	Quantity       int
	PriceAtBooking float64
}

// LineTotal стоимость позиции
func (l BookingRentalLine) LineTotal() float64 {
	return l.PriceAtBooking * float64(l.Quantity)
}

// IsActive возвращает true, если бронирование занимает слот
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusPaid || b.Status == StatusConfirmed
}

// EndTime время окончания бронирования
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// DurationHours длительность в часах (может быть дробной)
func (b *Booking) DurationHours() float64 {
	return float64(b.DurationMinutes) / 60.0
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Переходы: pending_payment -> paid -> confirmed -> completed;
// отмена возможна из любого активного статуса.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusPaid:
		return b.Status == StatusPendingPayment
	case StatusConfirmed:
		return b.Status == StatusPaid
	case StatusCompleted:
		return b.Status == StatusConfirmed
	case StatusCancelled:
		return b.CanBeCancelled()
	default:
		return false
	}
}

// LocationBookingsFilter фильтр для выборки бронирований локации
type LocationBookingsFilter struct {
	LocationID      uuid.UUID
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые
}
