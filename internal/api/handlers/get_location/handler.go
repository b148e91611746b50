package get_location

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog"
)

const (
	msgInvalidLocationID = "некоректний ID локації"
	msgNotFound          = "локацію не знайдено"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := uuid.Parse(vars["locationId"])
	if err != nil {
		h.logger.Warn("GET /locations/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	location, err := h.service.GetLocation(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, catalog.ErrLocationNotFound) {
			h.logger.Warn("GET /locations/{id} - Location not found: location_id=%s", locationID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /locations/{id} - Failed to get location: location_id=%s, error=%v", locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, location)
}
