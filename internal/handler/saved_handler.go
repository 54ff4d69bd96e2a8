package handler

import (
	"net/http"

	"chopnow/internal/model"
	"chopnow/internal/service"

	"github.com/rs/zerolog"
)

// SavedHandler handles saved-items (wish list) requests.
type SavedHandler struct {
	service service.SavedService
	logger  zerolog.Logger
}

// NewSavedHandler creates a new saved-items handler.
func NewSavedHandler(service service.SavedService, logger zerolog.Logger) *SavedHandler {
	return &SavedHandler{
		service: service,
		logger:  logger.With().Str("handler", "saved").Logger(),
	}
}

// List handles GET /api/saved requests.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Toggle handles POST /api/saved/toggle requests. The response reports the
// resulting state: saved is true when the item is now on the list.
func (h *SavedHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ToggleSavedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.FoodID == "" {
		writeBadRequest(w, r, model.ErrCodeMissingField, "foodId is required")
		return
	}

	saved, err := h.service.Toggle(r.Context(), uid, req.FoodID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ToggleSavedResponse{
		FoodID: req.FoodID,
		Saved:  saved,
	})
}
