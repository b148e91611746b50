package domain

// Значения по умолчанию для настроек бронирования.
// Используются, пока администратор не сохранил собственные настройки.
const (
	DefaultBasePricePerHour  = 500.00
	DefaultDepositPercentage = 30.00
	DefaultOpeningTime       = "09:00"
	DefaultClosingTime       = "21:00"
	DefaultMinBookingHours   = 1.0
	DefaultMaxBookingHours   = 8.0
	DefaultAdvanceDays       = 60
)

// Бизнес-константы
const (
	// SlotStepMinutes шаг сетки слотов. Фиксированный, не зависит от длительности.
	SlotStepMinutes = 60

	// DurationGranularityHours минимальная гранулярность длительности бронирования
	DurationGranularityHours = 0.5

	MaxNotesLength      = 500
	MaxClothingLines    = 10
	MaxPropLines        = 20
	MaxAdvanceDays      = 365
	MaxDurationHours    = 24.0
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
