package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
)

// Line позиция аренды для расчёта: цена за единицу и количество
type Line struct {
	Price    float64
	Quantity int
}

// Input входные данные расчёта стоимости бронирования
type Input struct {
	HourlyRate    float64
	DurationHours float64

	// Цены выбранных услуг. Порядок не влияет на результат.
	ServicePrices []float64

	// Позиции аренды (одежда, реквизит). Количества считаются уже проверенными.
	Lines []Line

	DepositPolicy     domain.DepositPolicy
	DepositPercentage float64
}

// Quote результат расчёта. Все суммы без промежуточного округления;
// округление происходит только при форматировании для отображения.
type Quote struct {
	HourlyRate    float64
	DurationHours float64

	BaseCost     float64
	ServicesCost float64
	RentalCost   float64

	TotalAmount   float64
	DepositAmount float64

	DepositPolicy     domain.DepositPolicy
	DepositPercentage float64
}

// Calculate вычисляет полную стоимость и предоплату.
// total = hourlyRate * duration + sum(услуги) + sum(цена * количество).
// Чистая функция: не читает каталог и не зависит от порядка слагаемых.
func Calculate(in Input) (*Quote, error) {
	if in.DurationHours <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, in.DurationHours)
	}
	if in.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: negative hourly rate", ErrInvalidAmount)
	}

	baseCost := in.HourlyRate * in.DurationHours

	servicesCost := 0.0
	for _, price := range in.ServicePrices {
		if price < 0 {
			return nil, fmt.Errorf("%w: negative service price", ErrInvalidAmount)
		}
		servicesCost += price
	}

	rentalCost := 0.0
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, line.Quantity)
		}
		if line.Price < 0 {
			return nil, fmt.Errorf("%w: negative line price", ErrInvalidAmount)
		}
		rentalCost += line.Price * float64(line.Quantity)
	}

	total := baseCost + servicesCost + rentalCost

	deposit, err := calculateDeposit(total, in)
	if err != nil {
		return nil, err
	}

	return &Quote{
		HourlyRate:        in.HourlyRate,
		DurationHours:     in.DurationHours,
		BaseCost:          baseCost,
		ServicesCost:      servicesCost,
		RentalCost:        rentalCost,
		TotalAmount:       total,
		DepositAmount:     deposit,
		DepositPolicy:     in.DepositPolicy,
		DepositPercentage: in.DepositPercentage,
	}, nil
}

// calculateDeposit применяет выбранную политику предоплаты.
// Инвариант: 0 <= deposit <= total.
func calculateDeposit(total float64, in Input) (float64, error) {
	switch in.DepositPolicy {
	case domain.DepositPercentage:
		if in.DepositPercentage < 0 || in.DepositPercentage > 100 {
			return 0, fmt.Errorf("%w: deposit percentage %v out of range", ErrInvalidAmount, in.DepositPercentage)
		}
		return total * in.DepositPercentage / 100.0, nil

	case domain.DepositCappedHalf:
		deposit := total * 0.5
		if deposit > in.HourlyRate {
			deposit = in.HourlyRate
		}
		return deposit, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDepositPolicy, in.DepositPolicy)
	}
}

// ParseAmount разбирает денежную строку ("500.00") в число.
// Некорректный формат - ошибка, тихое приведение не допускается.
func ParseAmount(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return amount, nil
}

// FormatAmount форматирует сумму для отображения: два знака после запятой
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
