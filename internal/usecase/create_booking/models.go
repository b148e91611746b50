package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/integrations/liqpay"
	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID    uuid.UUID        // ID локации студии
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	DurationHours float64          // Длительность в часах, кратна 0.5

	// Контактные данные клиента как пришли из формы, до нормализации
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Notes     string

	ServiceIDs  []uuid.UUID       // Выбранные дополнительные услуги
	RentalLines []domain.CartLine // Выбранные позиции аренды с количеством
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking  *domain.Booking  // Созданное бронирование со снимком цен
	Payment  *domain.Payment  // Платеж предоплаты
	Checkout *liqpay.Checkout // Данные для редиректа на страницу оплаты
}
