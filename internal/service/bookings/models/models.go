package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetLocationBookingsRequest запрос на получение бронирований локации
type GetLocationBookingsRequest struct {
	LocationID      uuid.UUID  `json:"location_id"`
	StartDate       *time.Time `json:"start_date,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"end_date,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"include_inactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetLocationBookingsRequest) ToDomainFilter() (domain.LocationBookingsFilter, error) {
	filter := domain.LocationBookingsFilter{
		LocationID:      r.LocationID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// RentalLineResponse строка аренды в составе бронирования
type RentalLineResponse struct {
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	PriceAtBooking float64   `json:"price_at_booking"`
	LineTotal      float64   `json:"line_total"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	LocationID  uuid.UUID `json:"location_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email,omitempty"`

	BookingDate   string  `json:"booking_date"` // "2026-03-15"
	StartTime     string  `json:"start_time"`   // "10:00"
	EndTime       string  `json:"end_time,omitempty"`
	DurationHours float64 `json:"duration_hours"`

	// Снимок цен на момент бронирования
	BasePricePerHour  float64 `json:"base_price_per_hour"`
	ServicesTotal     float64 `json:"services_total"`
	RentalTotal       float64 `json:"rental_total"`
	TotalAmount       float64 `json:"total_amount"`
	DepositAmount     float64 `json:"deposit_amount"`
	DepositPercentage float64 `json:"deposit_percentage"`
	DepositPolicy     string  `json:"deposit_policy"`

	Status     string     `json:"status"`
	PaymentID  *uuid.UUID `json:"payment_id,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	AdminNotes *string    `json:"admin_notes,omitempty"`

	ServiceIDs  []uuid.UUID          `json:"service_ids"`
	RentalItems []RentalLineResponse `json:"rental_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// PaymentStatusResponse ответ со статусом платежа
type PaymentStatusResponse struct {
	PaymentID     uuid.UUID  `json:"payment_id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	OrderID       string     `json:"order_id"`
	Status        string     `json:"status"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	FailureReason *string    `json:"failure_reason,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		LocationID:        b.LocationID,
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		PhoneNumber:       b.PhoneNumber,
		Email:             b.Email,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		DurationHours:     b.DurationHours(),
		BasePricePerHour:  b.BasePricePerHour,
		ServicesTotal:     b.ServicesTotal,
		RentalTotal:       b.RentalTotal,
		TotalAmount:       b.TotalAmount,
		DepositAmount:     b.DepositAmount,
		DepositPercentage: b.DepositPercentage,
		DepositPolicy:     string(b.DepositPolicy),
		Status:            string(b.Status),
		PaymentID:         b.PaymentID,
		Notes:             b.Notes,
		AdminNotes:        b.AdminNotes,
		ServiceIDs:        b.ServiceIDs,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if end, err := b.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []uuid.UUID{}
	}

	resp.RentalItems = make([]RentalLineResponse, len(b.RentalLines))
	for i, line := range b.RentalLines {
		resp.RentalItems[i] = RentalLineResponse{
			ItemID:         line.ItemID,
			ItemName:       line.ItemName,
			Category:       string(line.Category),
			Quantity:       line.Quantity,
			PriceAtBooking: line.PriceAtBooking,
			LineTotal:      line.LineTotal(),
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}

// FromDomainPayment конвертирует платеж в DTO статуса
func FromDomainPayment(p *domain.Payment) *PaymentStatusResponse {
	if p == nil {
		return nil
	}
	return &PaymentStatusResponse{
		PaymentID:     p.ID,
		BookingID:     p.BookingID,
		OrderID:       p.OrderID,
		Status:        string(p.Status),
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaidAt:        p.PaidAt,
		FailureReason: p.FailureReason,
	}
}
