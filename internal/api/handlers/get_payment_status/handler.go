package get_payment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings"
)

const (
	msgInvalidPaymentID = "некоректний ID платежу"
	msgNotFound         = "платіж не знайдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	paymentID, err := uuid.Parse(vars["paymentId"])
	if err != nil {
		h.logger.Warn("GET /payments/{id} - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	payment, err := h.service.GetPaymentStatus(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{id} - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /payments/{id} - Failed to get payment: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, payment)
}
