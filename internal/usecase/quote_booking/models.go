package quote_booking

import (
	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/pricing"
)

// Request модель запроса на расчет стоимости
type Request struct {
	LocationID    uuid.UUID         // ID локации студии
	DurationHours float64           // Длительность в часах, кратна 0.5
	ServiceIDs    []uuid.UUID       // Выбранные дополнительные услуги
	RentalLines   []domain.CartLine // Выбранные позиции аренды с количеством
}

// Response модель ответа с расчетом стоимости
type Response struct {
	Quote *pricing.Quote // Детализация стоимости и предоплаты
}
