package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chopnow/internal/auth"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(t *testing.T, capturedUID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capturedUID != nil {
			*capturedUID = UserID(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 1)
	token, err := tokens.Issue("u1")
	require.NoError(t, err)

	var uid string
	handler := BearerAuth(tokens, zerolog.Nop())(okHandler(t, &uid))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", uid)
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 1)
	handler := BearerAuth(tokens, zerolog.Nop())(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 1)
	handler := BearerAuth(tokens, zerolog.Nop())(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	other := auth.NewTokens("other-secret", 1)
	token, err := other.Issue("u1")
	require.NoError(t, err)

	tokens := auth.NewTokens("test-secret", 1)
	handler := BearerAuth(tokens, zerolog.Nop())(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_OpenPaths(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 1)
	handler := BearerAuth(tokens, zerolog.Nop())(okHandler(t, nil))

	for _, path := range []string{"/health", "/api/auth/signup", "/api/auth/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s should not require a token", path)
	}
}

func TestLogging_SetsCorrelationID(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CorrelationID(r.Context())
	})
	handler := Logging(zerolog.Nop())(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get("X-Correlation-ID"))
}

func TestLogging_PropagatesIncomingCorrelationID(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CorrelationID(r.Context())
	})
	handler := Logging(zerolog.Nop())(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
	req.Header.Set("X-Correlation-ID", "corr-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "corr-42", got)
	assert.Equal(t, "corr-42", rec.Header().Get("X-Correlation-ID"))
}

func TestRecovery(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := Recovery(zerolog.Nop())(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
