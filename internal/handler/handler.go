package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chopnow/internal/middleware"
	"chopnow/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError maps a service error to an HTTP status and a stable error code,
// tagging the body with the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	code := model.ErrCodeInternalError
	message := "something went wrong"

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message
	}

	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("handler error")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.CorrelationID(r.Context()),
	})
}

// writeBadRequest writes a 400 with an explicit code and message.
func writeBadRequest(w http.ResponseWriter, r *http.Request, code, message string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.CorrelationID(r.Context()),
	})
}

// writeMethodNotAllowed writes a 405.
func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
		Error:         "METHOD_NOT_ALLOWED",
		Message:       "method not allowed",
		CorrelationID: middleware.CorrelationID(r.Context()),
	})
}

// statusForCode maps stable error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeCartEmpty:
		return http.StatusBadRequest
	case model.ErrCodeNotAuthenticated, model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeEmailTaken:
		return http.StatusConflict
	case model.ErrCodeUserNotFound, model.ErrCodeFoodNotFound, model.ErrCodeCartLineNotFound:
		return http.StatusNotFound
	case model.ErrCodePaymentFailed:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID pulls the authenticated user id from the request context,
// writing a 401 when it is absent.
func requireUserID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (string, bool) {
	uid := middleware.UserID(r.Context())
	if uid == "" {
		writeError(w, r, model.ErrNotAuthenticated, logger)
		return "", false
	}
	return uid, true
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidJSON, "invalid request body")
		return false
	}
	return true
}
