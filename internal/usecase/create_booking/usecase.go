package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/lumiere-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/lumiere-studio/StudioBookingService/internal/pricing"
	"github.com/lumiere-studio/StudioBookingService/internal/validation"
	"github.com/lumiere-studio/StudioBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	catalogRepo  CatalogRepository
	settings     SettingsProvider
	gateway      PaymentGateway
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	catalogRepo CatalogRepository,
	settings SettingsProvider,
	gateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		catalogRepo:  catalogRepo,
		settings:     settings,
		gateway:      gateway,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись выполняются в сериализуемой транзакции,
// чтобы два клиента не заняли один интервал одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%s, date=%s, time=%s, duration=%.1f",
		req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация структуры запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация формы контактных данных с нормализацией
	form := validation.ValidateBookingForm(validation.FormInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
		Date:      req.Date.Format(domain.DateFormat),
		Time:      req.StartTime.String(),
	})
	if !form.Valid {
		uc.logger.Warn("CreateBooking: form validation failed: %d field(s)", len(form.Errors))
		return nil, &ValidationError{Fields: form.Errors}
	}
	contact := form.Normalized

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Настройки бронирования и режим обслуживания
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if !settings.IsBookingEnabled {
		uc.logger.Warn("CreateBooking: booking is disabled")
		return nil, ErrBookingDisabled
	}

	// 5. Валидация длительности, даты и времени начала
	if err := validateDuration(req.DurationHours, settings); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}
	if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateStartNotPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 6. Локация и ее рабочие часы
	location, err := uc.catalogRepo.GetActiveLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateBooking: location id=%s not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get location id=%s: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	durationMinutes := int(req.DurationHours * 60)
	if err := validateWorkingHours(location, req.StartTime, durationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: working hours validation failed: %v", err)
		return nil, err
	}

	// 7. Дополнительные услуги
	services, err := uc.catalogRepo.GetActiveServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(uniqueIDs(req.ServiceIDs)) {
		uc.logger.Warn("CreateBooking: some services not found or inactive")
		return nil, ErrServiceNotFound
	}

	// 8. Позиции аренды
	itemIDs := make([]uuid.UUID, 0, len(req.RentalLines))
	for _, line := range req.RentalLines {
		itemIDs = append(itemIDs, line.ItemID)
	}
	items, err := uc.catalogRepo.GetActiveRentalItemsByIDs(ctx, itemIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rental items: %v", err)
		return nil, fmt.Errorf("%w: failed to get rental items: %v", ErrInternal, err)
	}
	itemsByID := make(map[uuid.UUID]*domain.RentalItem, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}
	if err := validateRentalLineLimits(req.RentalLines, itemsByID); err != nil {
		uc.logger.Warn("CreateBooking: rental lines validation failed: %v", err)
		return nil, err
	}

	// 9. Расчет стоимости по текущим ценам каталога
	quote, err := calculateQuote(location, settings, services, req.RentalLines, itemsByID, req.DurationHours)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate quote: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}

	var (
		createdBooking *domain.Booking
		createdPayment *domain.Payment
	)

	// 10. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Активные бронирования локации на эту дату с блокировкой (FOR UPDATE)
		filter := domain.LocationBookingsFilter{
			LocationID:      req.LocationID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}
		bookings, err := uc.bookingRepo.GetByLocationWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 10.2. Проверяем, что интервал свободен
		overlaps, err := hasOverlappingBooking(req.StartTime, durationMinutes, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot %s is not available", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 10.3. Проверяем остатки по каждой позиции аренды на этот интервал
		startMinutes, err := req.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInternal, err)
		}
		for _, line := range req.RentalLines {
			item := itemsByID[line.ItemID]
			rented, err := uc.bookingRepo.GetRentedQuantity(txCtx, line.ItemID, req.Date, startMinutes, durationMinutes)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get rented quantity for item=%s: %v", line.ItemID, err)
				return fmt.Errorf("%w: failed to get rented quantity: %v", ErrInternal, err)
			}
			if rented+line.Quantity > item.Quantity {
				uc.logger.Warn("CreateBooking: rental item %s unavailable, requested=%d, rented=%d, on hand=%d",
					item.Name, line.Quantity, rented, item.Quantity)
				return fmt.Errorf("%w: %s", ErrRentalItemUnavailable, item.Name)
			}
		}

		// 10.4. Создаем бронирование со снимком цен
		booking := buildBooking(req, contact, location, settings, quote, itemsByID, durationMinutes)
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 10.5. Создаем платеж предоплаты
		payment := &domain.Payment{
			BookingID: created.ID,
			OrderID:   created.ID.String(),
			Amount:    quote.DepositAmount,
			Currency:  "UAH",
			Status:    domain.PaymentStatusPending,
		}
		if err := uc.paymentRepo.Create(txCtx, payment); err != nil {
			uc.logger.Error("CreateBooking: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.SetPayment(txCtx, created.ID, payment.ID); err != nil {
			uc.logger.Error("CreateBooking: failed to link payment: %v", err)
			return fmt.Errorf("%w: failed to link payment: %v", ErrInternal, err)
		}
		created.PaymentID = &payment.ID

		createdBooking = created
		createdPayment = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 11. Данные для редиректа на страницу оплаты
	checkout, err := uc.gateway.GenerateCheckout(createdPayment.OrderID, createdPayment.Amount)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to generate checkout: %v", err)
		return nil, fmt.Errorf("%w: failed to generate checkout: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, deposit=%.2f", createdBooking.ID, quote.DepositAmount)

	return &Response{
		Booking:  createdBooking,
		Payment:  createdPayment,
		Checkout: checkout,
	}, nil
}

// calculateQuote собирает вход для калькулятора стоимости.
// Часовая ставка берется из локации, позиции аренды к этому моменту
// проверены на существование
func calculateQuote(
	location *domain.Location,
	settings *domain.BookingSettings,
	services []*domain.AdditionalService,
	rentalLines []domain.CartLine,
	itemsByID map[uuid.UUID]*domain.RentalItem,
	durationHours float64,
) (*pricing.Quote, error) {
	servicePrices := make([]float64, 0, len(services))
	for _, service := range services {
		servicePrices = append(servicePrices, service.Price)
	}

	lines := make([]pricing.Line, 0, len(rentalLines))
	for _, cartLine := range rentalLines {
		lines = append(lines, pricing.Line{
			Price:    itemsByID[cartLine.ItemID].Price,
			Quantity: cartLine.Quantity,
		})
	}

	return pricing.Calculate(pricing.Input{
		HourlyRate:        location.HourlyRate,
		DurationHours:     durationHours,
		ServicePrices:     servicePrices,
		Lines:             lines,
		DepositPolicy:     settings.DepositPolicy,
		DepositPercentage: settings.DepositPercentage,
	})
}

// buildBooking собирает доменную модель бронирования со снимком цен
func buildBooking(
	req *Request,
	contact *domain.ContactInfo,
	location *domain.Location,
	settings *domain.BookingSettings,
	quote *pricing.Quote,
	itemsByID map[uuid.UUID]*domain.RentalItem,
	durationMinutes int,
) *domain.Booking {
	rentalLines := make([]domain.BookingRentalLine, 0, len(req.RentalLines))
	for _, cartLine := range req.RentalLines {
		item := itemsByID[cartLine.ItemID]
		rentalLines = append(rentalLines, domain.BookingRentalLine{
			ItemID:         item.ID,
			ItemName:       item.Name,
			Category:       item.Category,
			Quantity:       cartLine.Quantity,
			PriceAtBooking: item.Price,
		})
	}

	booking := &domain.Booking{
		LocationID:      req.LocationID,
		FirstName:       contact.FirstName,
		LastName:        contact.LastName,
		PhoneNumber:     contact.PhoneNumber,
		Email:           &contact.Email,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: durationMinutes,
		// Снимок цен на момент бронирования
		BasePricePerHour:  location.HourlyRate,
		ServicesTotal:     quote.ServicesCost,
		RentalTotal:       quote.RentalCost,
		TotalAmount:       quote.TotalAmount,
		DepositAmount:     quote.DepositAmount,
		DepositPercentage: settings.DepositPercentage,
		DepositPolicy:     settings.DepositPolicy,
		Status:            domain.StatusPendingPayment,
		ServiceIDs:        uniqueIDs(req.ServiceIDs),
		RentalLines:       rentalLines,
	}
	if contact.Notes != "" {
		booking.Notes = ptr.Ptr(contact.Notes)
	}
	return booking
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
