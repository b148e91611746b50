package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	LocationID    uuid.UUID // ID локации студии
	Date          time.Time // Дата для получения слотов (без времени)
	DurationHours float64   // Желаемая длительность бронирования в часах
}

// Response модель ответа со списком слотов
type Response struct {
	LocationID    uuid.UUID // ID локации
	Date          time.Time // Дата, на которую запрашивались слоты
	DurationHours float64   // Длительность, для которой считалась доступность
	Slots         []Slot    // Полная сетка слотов с флагами доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания с учетом длительности
	Available bool             // Свободен ли слот для бронирования
}
