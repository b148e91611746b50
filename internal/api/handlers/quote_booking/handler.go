package quote_booking

import (
	"errors"
	"net/http"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	quoteBooking "github.com/lumiere-studio/StudioBookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidBody        = "некоректне тіло запиту"
	msgLocationNotFound   = "локацію не знайдено"
	msgServiceNotFound    = "послугу не знайдено"
	msgRentalItemNotFound = "позицію оренди не знайдено"
	msgInvalidDuration    = "некоректна тривалість бронювання"
	msgInvalidInput       = "некоректні дані запиту"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings/quote - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, quoteBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/quote - Service not found: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, quoteBooking.ErrRentalItemNotFound):
			h.logger.Warn("POST /bookings/quote - Rental item not found: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgRentalItemNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings/quote - Invalid duration: duration=%v", req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/quote - Failed to calculate quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote calculated: location_id=%s, total=%.2f, deposit=%.2f",
		req.LocationID, result.Quote.TotalAmount, result.Quote.DepositAmount)
	handlers.RespondJSON(w, http.StatusOK, FromQuote(result.Quote))
}
