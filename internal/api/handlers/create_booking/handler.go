package create_booking

import (
	"errors"
	"net/http"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	createBooking "github.com/lumiere-studio/StudioBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody         = "некоректне тіло запиту"
	msgValidationFailed    = "перевірте правильність заповнення форми"
	msgBookingDisabled     = "онлайн-бронювання тимчасово вимкнено"
	msgLocationNotFound    = "локацію не знайдено"
	msgServiceNotFound     = "послугу не знайдено"
	msgRentalItemNotFound  = "позицію оренди не знайдено"
	msgRentalUnavailable   = "недостатня кількість позицій оренди на обраний час"
	msgTooManyRentalLines  = "забагато позицій оренди"
	msgInvalidDate         = "некоректна дата бронювання"
	msgDateTooFar          = "дата занадто далеко в майбутньому"
	msgInvalidDuration     = "некоректна тривалість бронювання"
	msgInvalidTimeSlot     = "некоректний час початку бронювання"
	msgOutsideWorkingHours = "бронювання виходить за межі робочих годин"
	msgSlotNotAvailable    = "обраний час вже зайнято"
	msgInvalidInput        = "некоректні дані запиту"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /bookings - Form validation failed: location_id=%s, fields=%d",
				req.LocationID, len(validationErr.Fields))
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrBookingDisabled):
			h.logger.Warn("POST /bookings - Booking disabled: location_id=%s", req.LocationID)
			handlers.RespondForbidden(w, msgBookingDisabled)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrRentalItemNotFound):
			h.logger.Warn("POST /bookings - Rental item not found: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgRentalItemNotFound)

		case errors.Is(err, createBooking.ErrRentalItemUnavailable):
			h.logger.Warn("POST /bookings - Rental item unavailable: location_id=%s, error=%v", req.LocationID, err)
			handlers.RespondConflict(w, msgRentalUnavailable)

		case errors.Is(err, createBooking.ErrTooManyRentalLines):
			h.logger.Warn("POST /bookings - Too many rental lines: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgTooManyRentalLines)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: location_id=%s, date=%s", req.LocationID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far: location_id=%s, date=%s", req.LocationID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: duration=%v", req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: location_id=%s, start=%s", req.LocationID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: location_id=%s, start=%s", req.LocationID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: location_id=%s, date=%s, start=%s",
				req.LocationID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: location_id=%s, error=%v", req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, location_id=%s, deposit=%.2f",
		result.Booking.ID, req.LocationID, result.Booking.DepositAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
