package get_available_slots

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	getAvailableSlots "github.com/lumiere-studio/StudioBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	LocationID    uuid.UUID       `json:"location_id"`
	Date          string          `json:"date"`
	DurationHours float64         `json:"duration_hours"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		LocationID:    resp.LocationID,
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(locationID uuid.UUID, dateStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		LocationID:    locationID,
		Date:          date,
		DurationHours: duration,
	}, nil
}
