package list_rental_items

import (
	"errors"
	"net/http"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	"github.com/lumiere-studio/StudioBookingService/internal/service/catalog"
)

const msgInvalidCategory = "некоректна категорія"

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

// Handle GET /api/v1/rental-items?category=clothing|prop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = &raw
	}

	items, err := h.service.ListRentalItems(r.Context(), category)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCategory) {
			h.logger.Warn("GET /rental-items - Invalid category")
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("GET /rental-items - Failed to list rental items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
