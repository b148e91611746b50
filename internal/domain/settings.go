package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/pkg/types"
)

// DepositPolicy политика расчёта предоплаты.
// В истории системы встречались обе: процент от суммы и половина суммы
// с потолком в один час аренды. Выбор делается настройкой, не кодом.
type DepositPolicy string

const (
	// DepositPercentage предоплата = total * depositPercentage / 100
	DepositPercentage DepositPolicy = "percentage"

	// DepositCappedHalf предоплата = min(total * 0.5, hourlyRate)
	DepositCappedHalf DepositPolicy = "capped_half"
)

// ParseDepositPolicy валидирует строковую политику предоплаты
func ParseDepositPolicy(s string) (DepositPolicy, bool) {
	switch DepositPolicy(s) {
	case DepositPercentage, DepositCappedHalf:
		return DepositPolicy(s), true
	}
	return "", false
}

// BookingSettings глобальные настройки бронирования (singleton-запись).
// Ядро их только читает; изменяются через админ-эндпоинт.
type BookingSettings struct {
	ID uuid.UUID

	BasePricePerHour  float64
	DepositPercentage float64
	DepositPolicy     DepositPolicy

	// Режим работы по умолчанию; у локации могут быть свои часы
	OpeningTime types.TimeString
	ClosingTime types.TimeString

	// Длительность в часах, допускаются дробные значения с шагом 0.5
	MinBookingHours float64
	MaxBookingHours float64

	AdvanceBookingDays int

	IsBookingEnabled   bool
	MaintenanceMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultBookingSettings настройки по умолчанию
func DefaultBookingSettings() *BookingSettings {
	return &BookingSettings{
		BasePricePerHour:   DefaultBasePricePerHour,
		DepositPercentage:  DefaultDepositPercentage,
		DepositPolicy:      DepositPercentage,
		OpeningTime:        types.TimeString(DefaultOpeningTime),
		ClosingTime:        types.TimeString(DefaultClosingTime),
		MinBookingHours:    DefaultMinBookingHours,
		MaxBookingHours:    DefaultMaxBookingHours,
		AdvanceBookingDays: DefaultAdvanceDays,
		IsBookingEnabled:   true,
	}
}

// TimeSlot кандидат или результат расчёта доступности: окно бронирования.
// Значение пересчитывается на каждый запрос и нигде не сохраняется.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// ContactInfo нормализованные контактные данные клиента.
// Создаётся валидатором формы; при valid=true все поля удовлетворяют
// формату: телефон +380XXXXXXXXX, email в нижнем регистре без пробелов.
type ContactInfo struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Notes       string
}
