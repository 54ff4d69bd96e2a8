package handler

import (
	"net/http"

	"chopnow/internal/model"
	"chopnow/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles sign-up, login and profile requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// Signup handles POST /api/auth/signup requests.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login requests.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Profile handles GET and PUT /api/profile requests.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.service.GetProfile(r.Context(), uid)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodPut:
		var req model.UpdateProfileRequest
		if !decodeBody(w, r, &req) {
			return
		}

		profile, err := h.service.UpdateProfile(r.Context(), uid, &req)
		if err != nil {
			writeError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)

	default:
		writeMethodNotAllowed(w, r)
	}
}
