package handler

import (
	"net/http"
	"strings"

	"chopnow/internal/model"
	"chopnow/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles food catalog requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/foods requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}

	items, err := h.service.ListFoodItems(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/foods/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/foods/")
	if id == "" || strings.Contains(id, "/") {
		writeBadRequest(w, r, model.ErrCodeMissingField, "food id is required")
		return
	}

	item, err := h.service.GetFoodItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
