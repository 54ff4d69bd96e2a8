package handler

import (
	"context"
	"net/http"

	"chopnow/internal/model"
	"chopnow/internal/payment"
	"chopnow/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentGateway is the slice of the payment client the order flow needs.
type PaymentGateway interface {
	Initialize(ctx context.Context, email string, amountKobo int64, reference, callbackURL string) (*payment.Authorization, error)
	Verify(ctx context.Context, reference string) (*payment.Transaction, error)
}

// OrderHandler handles checkout, payment verification and order history.
type OrderHandler struct {
	cartService  service.CartService
	orderService service.OrderService
	gateway      PaymentGateway
	callbackURL  string
	logger       zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	cartService service.CartService,
	orderService service.OrderService,
	gateway PaymentGateway,
	callbackURL string,
	logger zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		cartService:  cartService,
		orderService: orderService,
		gateway:      gateway,
		callbackURL:  callbackURL,
		logger:       logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests. It snapshots the cart and
// initialises a gateway transaction for its total. The cart itself is left
// untouched; nothing is persisted until the payment is verified.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	snapshot, err := h.cartService.Checkout(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	reference := uuid.NewString()
	auth, err := h.gateway.Initialize(
		r.Context(),
		snapshot.User.Email,
		payment.KoboAmount(snapshot.TotalPrice),
		reference,
		h.callbackURL,
	)
	if err != nil {
		h.logger.Error().Err(err).Str("uid", uid).Msg("failed to initialise payment")
		writeError(w, r, model.ErrPaymentFailed, h.logger)
		return
	}

	h.logger.Info().
		Str("uid", uid).
		Str("reference", auth.Reference).
		Float64("total_price", snapshot.TotalPrice).
		Msg("payment initialised")

	writeJSON(w, http.StatusOK, model.CheckoutResponse{
		Reference:        auth.Reference,
		AuthorizationURL: auth.AuthorizationURL,
		TotalPrice:       snapshot.TotalPrice,
	})
}

// VerifyPayment handles POST /api/payments/verify requests. Verification is
// the only path that creates an order: the gateway must report the
// transaction as successful, and the order is then written as an immutable
// snapshot of the current cart. The cart is not cleared.
//
// Verification is idempotent per reference. A reference that already
// produced an order returns that order unchanged, so a retried or replayed
// verify never mints a second order for one payment.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.VerifyPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Reference == "" {
		writeBadRequest(w, r, model.ErrCodeMissingField, "reference is required")
		return
	}

	existing, err := h.orderService.GetByReference(r.Context(), req.Reference)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if existing != nil {
		// Another user replaying someone else's reference gets nothing.
		if existing.User.UID != uid {
			h.logger.Warn().
				Str("uid", uid).
				Str("reference", req.Reference).
				Msg("verify rejected: reference belongs to another user's order")
			writeError(w, r, model.ErrPaymentFailed, h.logger)
			return
		}
		h.logger.Info().
			Str("uid", uid).
			Str("reference", req.Reference).
			Str("order_id", existing.ID.Hex()).
			Msg("payment already verified, returning existing order")
		writeJSON(w, http.StatusOK, existing)
		return
	}

	txn, err := h.gateway.Verify(r.Context(), req.Reference)
	if err != nil {
		h.logger.Error().Err(err).Str("reference", req.Reference).Msg("failed to verify payment")
		writeError(w, r, model.ErrPaymentFailed, h.logger)
		return
	}

	if txn.Status != payment.StatusSuccess {
		h.logger.Warn().
			Str("reference", req.Reference).
			Str("status", txn.Status).
			Msg("payment not successful")
		writeError(w, r, model.ErrPaymentFailed, h.logger)
		return
	}

	snapshot, err := h.cartService.Checkout(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	// The cart can have changed between checkout and verification; the paid
	// amount wins, the mismatch is only surfaced in the logs.
	if expected := payment.KoboAmount(snapshot.TotalPrice); txn.Amount != expected {
		h.logger.Warn().
			Str("reference", txn.Reference).
			Int64("paid_kobo", txn.Amount).
			Int64("cart_kobo", expected).
			Msg("verified amount differs from current cart total")
	}

	order, err := h.orderService.Create(r.Context(), snapshot, txn.Reference, txn.Status)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests, returning the user's order history
// flattened to one row per purchased item.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}

	uid, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	rows, err := h.orderService.ListForUser(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
