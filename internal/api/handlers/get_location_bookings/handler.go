package get_location_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	"github.com/lumiere-studio/StudioBookingService/internal/domain"
	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings"
	"github.com/lumiere-studio/StudioBookingService/internal/service/bookings/models"
)

const (
	msgInvalidLocationID = "некоректний ID локації"
	msgInvalidStartDate  = "некоректна дата початку періоду"
	msgInvalidEndDate    = "некоректна дата кінця періоду"
	msgInvalidStatus     = "некоректний статус бронювання"
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

// Handle GET /api/v1/admin/locations/{locationId}/bookings
// Query params: start_date, end_date, status, include_inactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := uuid.Parse(vars["locationId"])
	if err != nil {
		h.logger.Warn("GET /admin/locations/{id}/bookings - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	req := &models.GetLocationBookingsRequest{LocationID: locationID}
	query := r.URL.Query()

	if startStr := query.Get("start_date"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /admin/locations/{id}/bookings - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &start
	}

	if endStr := query.Get("end_date"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /admin/locations/{id}/bookings - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeInactive = query.Get("include_inactive") == "true"

	result, err := h.service.GetLocationBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /admin/locations/{id}/bookings - Invalid status filter: location_id=%s", locationID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/locations/{id}/bookings - Failed to get bookings: location_id=%s, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/locations/{id}/bookings - Bookings retrieved: location_id=%s, count=%d",
		locationID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
