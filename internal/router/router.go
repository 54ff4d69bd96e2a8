package router

import (
	"net/http"

	"chopnow/internal/auth"
	"chopnow/internal/handler"
	"chopnow/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	savedHandler *handler.SavedHandler,
	orderHandler *handler.OrderHandler,
	tokens *auth.Tokens,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth routes (no token required)
	mux.HandleFunc("/api/auth/signup", userHandler.Signup)
	mux.HandleFunc("/api/auth/login", userHandler.Login)

	// Catalog routes
	foodRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/foods" && r.URL.Path != "/api/foods/" {
			catalogHandler.GetByID(w, r)
			return
		}
		catalogHandler.List(w, r)
	}
	mux.HandleFunc("/api/foods", foodRouteHandler)
	mux.HandleFunc("/api/foods/", foodRouteHandler)

	// Cart routes. The longer /api/cart/added and /api/cart/food
	// registrations win over the /api/cart/ prefix, which otherwise treats
	// the path suffix as a cart line id.
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cart" && r.URL.Path != "/api/cart/" {
			cartHandler.CartItem(w, r)
			return
		}
		cartHandler.Cart(w, r)
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)
	mux.HandleFunc("/api/cart/added", cartHandler.Added)
	mux.HandleFunc("/api/cart/added/", cartHandler.Added)
	mux.HandleFunc("/api/cart/food/", cartHandler.CartFood)

	// Saved items routes
	mux.HandleFunc("/api/saved", savedHandler.List)
	mux.HandleFunc("/api/saved/toggle", savedHandler.Toggle)

	// Checkout and order routes
	mux.HandleFunc("/api/checkout", orderHandler.Checkout)
	mux.HandleFunc("/api/payments/verify", orderHandler.VerifyPayment)
	mux.HandleFunc("/api/orders", orderHandler.List)

	// Profile routes
	mux.HandleFunc("/api/profile", userHandler.Profile)

	// Apply middleware in order: Recovery -> Logging -> CORS -> BearerAuth
	var h http.Handler = mux
	h = middleware.BearerAuth(tokens, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
