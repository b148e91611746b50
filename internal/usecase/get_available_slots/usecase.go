package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	settings     SettingsProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	settings SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%s, date=%s, duration=%.1f",
		req.LocationID, req.Date.Format(domain.DateFormat), req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Валидация длительности и даты по настройкам
	if err := validateDuration(req.DurationHours, settings); err != nil {
		uc.logger.Warn("GetAvailableSlots: duration validation failed: %v", err)
		return nil, err
	}
	if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем локацию с ее рабочими часами
	location, err := uc.catalogRepo.GetActiveLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableSlots: location id=%s not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get location id=%s: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 6. Генерируем сетку слотов для рабочих часов локации
	durationMinutes := int(req.DurationHours * 60)
	grid, err := generateSlotGrid(location.OpeningTime, location.ClosingTime, durationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}

	// 7. Получаем активные бронирования локации на эту дату
	filter := domain.LocationBookingsFilter{
		LocationID:      req.LocationID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}
	bookings, err := uc.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность каждого слота
	slots := markAvailability(grid, durationMinutes, bookings, req.Date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for location=%s, date=%s",
		len(slots), req.LocationID, req.Date.Format(domain.DateFormat))

	return &Response{
		LocationID:    req.LocationID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Slots:         slots,
	}, nil
}
