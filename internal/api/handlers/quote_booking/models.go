package quote_booking

import (
	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/pricing"
	quoteBooking "github.com/lumiere-studio/StudioBookingService/internal/usecase/quote_booking"
)

// QuoteRequest HTTP запрос на расчет стоимости
type QuoteRequest struct {
	LocationID    uuid.UUID           `json:"location_id"`
	DurationHours float64             `json:"duration_hours"`
	ServiceIDs    []uuid.UUID         `json:"service_ids,omitempty"`
	RentalItems   []RentalLineRequest `json:"rental_items,omitempty"`
}

// RentalLineRequest позиция аренды в запросе
type RentalLineRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// QuoteResponse HTTP ответ с детализацией стоимости
type QuoteResponse struct {
	HourlyRate    float64 `json:"hourly_rate"`
	DurationHours float64 `json:"duration_hours"`

	BaseCost     float64 `json:"base_cost"`
	ServicesCost float64 `json:"services_cost"`
	RentalCost   float64 `json:"rental_cost"`

	TotalAmount   float64 `json:"total_amount"`
	DepositAmount float64 `json:"deposit_amount"`

	DepositPolicy     string  `json:"deposit_policy"`
	DepositPercentage float64 `json:"deposit_percentage"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *QuoteRequest) ToUseCaseRequest() *quoteBooking.Request {
	lines := make([]domain.CartLine, len(r.RentalItems))
	for i, item := range r.RentalItems {
		lines[i] = domain.CartLine{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		}
	}

	return &quoteBooking.Request{
		LocationID:    r.LocationID,
		DurationHours: r.DurationHours,
		ServiceIDs:    r.ServiceIDs,
		RentalLines:   lines,
	}
}

// FromQuote конвертирует расчет в HTTP response
func FromQuote(q *pricing.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}
	return &QuoteResponse{
		HourlyRate:        q.HourlyRate,
		DurationHours:     q.DurationHours,
		BaseCost:          q.BaseCost,
		ServicesCost:      q.ServicesCost,
		RentalCost:        q.RentalCost,
		TotalAmount:       q.TotalAmount,
		DepositAmount:     q.DepositAmount,
		DepositPolicy:     string(q.DepositPolicy),
		DepositPercentage: q.DepositPercentage,
	}
}
