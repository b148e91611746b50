package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	getAvailableSlots "github.com/lumiere-studio/StudioBookingService/internal/usecase/get_available_slots"
	"github.com/lumiere-studio/StudioBookingService/internal/validation"
)

const (
	msgInvalidLocationID = "некоректний ID локації"
	msgMissingParams     = "відсутні обов'язкові параметри"
	msgInvalidParams     = "некоректні параметри запиту"
	msgLocationNotFound  = "локацію не знайдено"
	msgInvalidDate       = "некоректна дата бронювання"
	msgDateTooFar        = "дата занадто далеко в майбутньому"
	msgInvalidDuration   = "некоректна тривалість бронювання"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration_hours (required, кратно 0.5)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := uuid.Parse(vars["locationId"])
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	query := r.URL.Query()
	params := map[string]string{
		"date":           query.Get("date"),
		"duration_hours": query.Get("duration_hours"),
	}
	if missing := validation.RequireParams(params, "date", "duration_hours"); len(missing) > 0 {
		h.logger.Warn("GET /locations/{id}/available-slots - Missing params: %s", strings.Join(missing, ", "))
		handlers.RespondBadRequest(w, msgMissingParams+": "+strings.Join(missing, ", "))
		return
	}

	useCaseReq, err := ToUseCaseRequest(locationID, params["date"], params["duration_hours"])
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/available-slots - Location not found: location_id=%s", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /locations/{id}/available-slots - Invalid date: location_id=%s", locationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /locations/{id}/available-slots - Date too far: location_id=%s", locationID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /locations/{id}/available-slots - Invalid duration: location_id=%s", locationID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /locations/{id}/available-slots - Failed to get slots: location_id=%s, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/available-slots - Slots retrieved: location_id=%s, slots_count=%d",
		locationID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
