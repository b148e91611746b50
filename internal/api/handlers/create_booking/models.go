package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	bookingModels "github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
	createBooking "github.com/lumiere-studio/StudioBookingService/internal/usecase/create_booking"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	LocationID    uuid.UUID `json:"location_id"`
	Date          string    `json:"date"`       // "2026-03-15"
	StartTime     string    `json:"start_time"` // "10:00"
	DurationHours float64   `json:"duration_hours"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes,omitempty"`

	ServiceIDs  []uuid.UUID         `json:"service_ids,omitempty"`
	RentalItems []RentalLineRequest `json:"rental_items,omitempty"`
}

// RentalLineRequest позиция аренды в запросе
type RentalLineRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// CheckoutResponse данные для редиректа на страницу оплаты
type CheckoutResponse struct {
	Data        string `json:"data"`
	Signature   string `json:"signature"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	Booking   *bookingModels.BookingResponse `json:"booking"`
	PaymentID uuid.UUID                      `json:"payment_id"`
	Checkout  *CheckoutResponse              `json:"checkout"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, len(r.RentalItems))
	for i, item := range r.RentalItems {
		lines[i] = domain.CartLine{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		}
	}

	return &createBooking.Request{
		LocationID:    r.LocationID,
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		Email:         r.Email,
		Notes:         r.Notes,
		ServiceIDs:    r.ServiceIDs,
		RentalLines:   lines,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	result := &CreateBookingResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
	}

	if resp.Payment != nil {
		result.PaymentID = resp.Payment.ID
	}

	if resp.Checkout != nil {
		result.Checkout = &CheckoutResponse{
			Data:        resp.Checkout.Data,
			Signature:   resp.Checkout.Signature,
			CheckoutURL: resp.Checkout.CheckoutURL,
		}
	}

	return result
}
