package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// Location зал фотостудии
type Location struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string

	// HourlyRate базовая ставка аренды (UAH/час). Задаётся админкой, ядро только читает.
	HourlyRate float64

	OpeningTime types.TimeString
	ClosingTime types.TimeString

	Capacity  int
	Amenities string // список через запятую, как хранит админка

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AmenitiesList возвращает удобства как список строк
func (l *Location) AmenitiesList() []string {
	if l.Amenities == "" {
		return []string{}
	}
	parts := strings.Split(l.Amenities, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
