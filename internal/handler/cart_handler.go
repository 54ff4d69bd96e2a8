package handler

import (
	"net/http"
	"strings"

	"chopnow/internal/model"
	"chopnow/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Cart handles GET and POST /api/cart requests.
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		resp, err := h.service.List(r.Context(), uid)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)

	case http.MethodPost:
		var req model.AddCartItemRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.FoodID == "" {
			writeBadRequest(w, r, model.ErrCodeMissingField, "foodId is required")
			return
		}

		line, err := h.service.AddItem(r.Context(), uid, req.FoodID)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, line)

	default:
		writeMethodNotAllowed(w, r)
	}
}

// CartItem handles PATCH and DELETE /api/cart/{id} requests.
func (h *CartHandler) CartItem(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	lineID := strings.TrimPrefix(r.URL.Path, "/api/cart/")
	if lineID == "" || strings.Contains(lineID, "/") {
		writeBadRequest(w, r, model.ErrCodeMissingField, "cart line id is required")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req model.ChangeQuantityRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Delta == 0 {
			writeBadRequest(w, r, model.ErrCodeMissingField, "delta must be non-zero")
			return
		}

		resp, err := h.service.ChangeQuantity(r.Context(), uid, lineID, req.Delta)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)

	case http.MethodDelete:
		resp, err := h.service.RemoveItem(r.Context(), uid, lineID)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)

	default:
		writeMethodNotAllowed(w, r)
	}
}

// CartFood handles DELETE /api/cart/food/{foodId} requests, dropping every
// cart line for that food id in one batched delete.
func (h *CartHandler) CartFood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	foodID := strings.TrimPrefix(r.URL.Path, "/api/cart/food/")
	if foodID == "" || strings.Contains(foodID, "/") {
		writeBadRequest(w, r, model.ErrCodeMissingField, "food id is required")
		return
	}

	resp, err := h.service.RemoveFood(r.Context(), uid, foodID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Added handles GET /api/cart/added and GET /api/cart/added/{foodId}
// requests. The bare path returns every food id the user has added to the
// cart, as tracked in the fast lookup set; the suffixed form answers the
// single-item membership question a detail view asks.
func (h *CartHandler) Added(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	foodID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/cart/added"), "/")
	if foodID != "" {
		if strings.Contains(foodID, "/") {
			writeBadRequest(w, r, model.ErrCodeMissingField, "food id is required")
			return
		}

		added, err := h.service.HasAdded(r.Context(), uid, foodID)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"foodId": foodID, "added": added})
		return
	}

	ids, err := h.service.AddedFoodIDs(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"foodIds": ids})
}
