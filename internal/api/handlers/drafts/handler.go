package drafts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
	"github.com/lumiere-studio/StudioBookingService/internal/infra/cache"
)

const (
	msgInvalidDraftID = "некоректний ID чернетки"
	msgInvalidBody    = "некоректне тіло запиту"
	msgDraftNotFound  = "чернетку не знайдено"

	// Черновик хранит форму целиком, лимит защищает Redis от мусора
	maxDraftSize = 64 * 1024
)

// CreateDraftResponse ответ с ID созданного черновика
type CreateDraftResponse struct {
	DraftID uuid.UUID `json:"draft_id"`
}

type Handler struct {
	store  DraftStore
	logger Logger
}

func NewHandler(store DraftStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// HandleCreate POST /api/v1/drafts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	data, ok := h.readDraftBody(w, r, "POST /drafts")
	if !ok {
		return
	}

	id, err := h.store.Create(r.Context(), data)
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, CreateDraftResponse{DraftID: id})
}

// HandleGet GET /api/v1/drafts/{draftId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseDraftID(w, r, "GET /drafts/{id}")
	if !ok {
		return
	}

	data, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cache.ErrDraftNotFound) {
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", id)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, data)
}

// HandleUpdate PUT /api/v1/drafts/{draftId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseDraftID(w, r, "PUT /drafts/{id}")
	if !ok {
		return
	}

	data, ok := h.readDraftBody(w, r, "PUT /drafts/{id}")
	if !ok {
		return
	}

	if err := h.store.Update(r.Context(), id, data); err != nil {
		if errors.Is(err, cache.ErrDraftNotFound) {
			h.logger.Warn("PUT /drafts/{id} - Draft not found: draft_id=%s", id)
			handlers.RespondNotFound(w, msgDraftNotFound)
			return
		}
		h.logger.Error("PUT /drafts/{id} - Failed to update draft: draft_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /drafts/{id} - Draft updated: draft_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleDelete DELETE /api/v1/drafts/{draftId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseDraftID(w, r, "DELETE /drafts/{id}")
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /drafts/{id} - Failed to delete draft: draft_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft deleted: draft_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseDraftID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["draftId"])
	if err != nil {
		h.logger.Warn("%s - Invalid draft ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) readDraftBody(w http.ResponseWriter, r *http.Request, op string) (json.RawMessage, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDraftSize+1))
	if err != nil {
		h.logger.Warn("%s - Failed to read body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return nil, false
	}
	if len(body) == 0 || len(body) > maxDraftSize || !json.Valid(body) {
		h.logger.Warn("%s - Invalid draft body: size=%d", op, len(body))
		handlers.RespondBadRequest(w, msgInvalidBody)
		return nil, false
	}
	return json.RawMessage(body), true
}
