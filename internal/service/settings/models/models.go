package models

import (
	"time"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// SettingsResponse ответ с настройками бронирования
type SettingsResponse struct {
	BasePricePerHour   float64   `json:"base_price_per_hour"`
	DepositPercentage  float64   `json:"deposit_percentage"`
	DepositPolicy      string    `json:"deposit_policy"`
	OpeningTime        string    `json:"opening_time"` // "09:00"
	ClosingTime        string    `json:"closing_time"` // "21:00"
	MinBookingHours    float64   `json:"min_booking_hours"`
	MaxBookingHours    float64   `json:"max_booking_hours"`
	AdvanceBookingDays int       `json:"advance_booking_days"`
	IsBookingEnabled   bool      `json:"is_booking_enabled"`
	MaintenanceMessage string    `json:"maintenance_message,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateSettingsRequest запрос на частичное обновление настроек.
// Не указанные поля остаются без изменений
type UpdateSettingsRequest struct {
	BasePricePerHour   *float64 `json:"base_price_per_hour,omitempty"`
	DepositPercentage  *float64 `json:"deposit_percentage,omitempty"`
	DepositPolicy      *string  `json:"deposit_policy,omitempty"`
	OpeningTime        *string  `json:"opening_time,omitempty"`
	ClosingTime        *string  `json:"closing_time,omitempty"`
	MinBookingHours    *float64 `json:"min_booking_hours,omitempty"`
	MaxBookingHours    *float64 `json:"max_booking_hours,omitempty"`
	AdvanceBookingDays *int     `json:"advance_booking_days,omitempty"`
	IsBookingEnabled   *bool    `json:"is_booking_enabled,omitempty"`
	MaintenanceMessage *string  `json:"maintenance_message,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BookingSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		BasePricePerHour:   s.BasePricePerHour,
		DepositPercentage:  s.DepositPercentage,
		DepositPolicy:      string(s.DepositPolicy),
		OpeningTime:        s.OpeningTime.String(),
		ClosingTime:        s.ClosingTime.String(),
		MinBookingHours:    s.MinBookingHours,
		MaxBookingHours:    s.MaxBookingHours,
		AdvanceBookingDays: s.AdvanceBookingDays,
		IsBookingEnabled:   s.IsBookingEnabled,
		MaintenanceMessage: s.MaintenanceMessage,
		UpdatedAt:          s.UpdatedAt,
	}
}
