package payment_callback

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	processPaymentCallback "github.com/lumiere-studio/StudioBookingService/internal/usecase/process_payment_callback"
	"github.com/lumiere-studio/StudioBookingService/internal/validation"
)

const (
	msgInvalidForm      = "некоректне тіло запиту"
	msgInvalidSignature = "некоректний підпис"
	msgInvalidPayload   = "некоректні дані платежу"
	msgPaymentNotFound  = "платіж не знайдено"
)

type Handler struct {
	useCase ProcessPaymentCallbackUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentCallbackUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
// Платежная система присылает form-encoded тело с полями data и signature
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /payments/callback - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	params := map[string]string{
		"data":      r.PostFormValue("data"),
		"signature": r.PostFormValue("signature"),
	}
	if missing := validation.RequireParams(params, "data", "signature"); len(missing) > 0 {
		h.logger.Warn("POST /payments/callback - Missing fields: %s", strings.Join(missing, ", "))
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	data := params["data"]
	signature := params["signature"]

	if err := h.useCase.Execute(r.Context(), data, signature); err != nil {
		switch {
		case errors.Is(err, processPaymentCallback.ErrInvalidSignature):
			h.logger.Warn("POST /payments/callback - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, processPaymentCallback.ErrInvalidPayload):
			h.logger.Warn("POST /payments/callback - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)

		case errors.Is(err, processPaymentCallback.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/callback - Payment not found: %v", err)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("POST /payments/callback - Failed to process callback: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
