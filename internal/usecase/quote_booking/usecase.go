package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/lumiere-studio/StudioBookingService/internal/pricing"
)

// UseCase use case для расчета стоимости бронирования без его создания.
// Используется формой бронирования для живого пересчета итоговой суммы
type UseCase struct {
	catalogRepo CatalogRepository
	settings    SettingsProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, settings SettingsProvider, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		settings:    settings,
		logger:      logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки бронирования
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if req.DurationHours < settings.MinBookingHours || req.DurationHours > settings.MaxBookingHours {
		return nil, fmt.Errorf("%w: duration must be between %.1f and %.1f hours",
			ErrInvalidDuration, settings.MinBookingHours, settings.MaxBookingHours)
	}

	// 3. Локация с часовой ставкой
	location, err := uc.catalogRepo.GetActiveLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("QuoteBooking: location id=%s not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get location id=%s: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 4. Дополнительные услуги
	services, err := uc.catalogRepo.GetActiveServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(uniqueIDs(req.ServiceIDs)) {
		return nil, ErrServiceNotFound
	}

	// 5. Позиции аренды
	itemIDs := make([]uuid.UUID, 0, len(req.RentalLines))
	for _, line := range req.RentalLines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	items, err := uc.catalogRepo.GetActiveRentalItemsByIDs(ctx, itemIDs)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to get rental items: %v", err)
		return nil, fmt.Errorf("%w: failed to get rental items: %v", ErrInternal, err)
	}
	itemsByID := make(map[uuid.UUID]*domain.RentalItem, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	// 6. Сборка входа калькулятора
	servicePrices := make([]float64, 0, len(services))
	for _, service := range services {
		servicePrices = append(servicePrices, service.Price)
	}
	lines := make([]pricing.Line, 0, len(req.RentalLines))
	for _, cartLine := range req.RentalLines {
		item, ok := itemsByID[cartLine.ItemID]
		if !ok {
			return nil, ErrRentalItemNotFound
		}
		lines = append(lines, pricing.Line{
			Price:    item.Price,
			Quantity: cartLine.Quantity,
		})
	}

	quote, err := pricing.Calculate(pricing.Input{
		HourlyRate:        location.HourlyRate,
		DurationHours:     req.DurationHours,
		ServicePrices:     servicePrices,
		Lines:             lines,
		DepositPolicy:     settings.DepositPolicy,
		DepositPercentage: settings.DepositPercentage,
	})
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to calculate quote: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteBooking: location=%s, duration=%.1f, total=%.2f, deposit=%.2f",
		req.LocationID, req.DurationHours, quote.TotalAmount, quote.DepositAmount)

	return &Response{Quote: quote}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID == uuid.Nil {
		return fmt.Errorf("%w: locationID is required", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}
	halves := req.DurationHours / domain.DurationGranularityHours
	if math.Abs(halves-math.Round(halves)) > 1e-9 {
		return fmt.Errorf("%w: duration must be a multiple of %.1f hours", ErrInvalidDuration, domain.DurationGranularityHours)
	}

	for _, line := range req.RentalLines {
		if line.ItemID == uuid.Nil {
			return fmt.Errorf("%w: rental line item id is required", ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: rental line quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// uniqueIDs возвращает список ID без дубликатов
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
