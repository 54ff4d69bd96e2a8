package service

import (
	"context"

	"chopnow/internal/model"
)

// CartService maintains a user's cart lines and their derived total, and
// mediates all cart mutations.
type CartService interface {
	// AddItem creates a new cart line with quantity one for the given food
	// item. It succeeds even when a line for that food id already exists.
	AddItem(ctx context.Context, userID, foodID string) (*model.CartLine, error)

	// List returns the user's cart lines and the computed total.
	List(ctx context.Context, userID string) (*model.CartResponse, error)

	// ChangeQuantity applies a delta to a line's quantity. A resulting
	// quantity of zero or below removes the line entirely; a zero-quantity
	// record is never persisted. Returns the recomputed cart.
	ChangeQuantity(ctx context.Context, userID, lineID string, delta int) (*model.CartResponse, error)

	// RemoveItem deletes a line and returns the recomputed cart.
	RemoveItem(ctx context.Context, userID, lineID string) (*model.CartResponse, error)

	// RemoveFood deletes every line carrying the given food id in one
	// batched delete and returns the recomputed cart.
	RemoveFood(ctx context.Context, userID, foodID string) (*model.CartResponse, error)

	// AddedFoodIDs returns the set of food ids the user has ever added to
	// the cart, as tracked across devices.
	AddedFoodIDs(ctx context.Context, userID string) ([]string, error)

	// HasAdded reports whether a single food id is in the user's added set.
	HasAdded(ctx context.Context, userID, foodID string) (bool, error)

	// Checkout builds a snapshot of the current cart for the payment flow.
	// It does not clear the cart.
	Checkout(ctx context.Context, userID string) (*model.CheckoutSnapshot, error)
}

// CatalogService exposes read-mostly catalog operations.
type CatalogService interface {
	// ListFoodItems returns all catalog entries. No filtering or pagination;
	// a full collection scan is acceptable at this scale.
	ListFoodItems(ctx context.Context) ([]model.FoodItem, error)

	// GetFoodItem retrieves a single catalog entry.
	GetFoodItem(ctx context.Context, id string) (*model.FoodItem, error)
}

// SavedService manages wish-list membership. Presence of a saved-item
// document is the sole source of truth for the liked state.
type SavedService interface {
	// List returns the user's saved items.
	List(ctx context.Context, userID string) ([]model.SavedItem, error)

	// Toggle flips the saved state for (userID, foodID) and reports the
	// resulting state: true when the item is now saved.
	Toggle(ctx context.Context, userID, foodID string) (bool, error)
}

// OrderService creates and reads order snapshots.
type OrderService interface {
	// Create writes a new immutable order snapshot. It is only called after
	// a successful payment verification and never touches the cart.
	Create(ctx context.Context, snapshot *model.CheckoutSnapshot, reference, status string) (*model.Order, error)

	// ListForUser returns the user's order history flattened to one row per
	// (order, line item) pair.
	ListForUser(ctx context.Context, userID string) ([]model.OrderRow, error)

	// GetByReference returns the order created for a payment reference, or
	// nil when that reference has not produced an order yet.
	GetByReference(ctx context.Context, reference string) (*model.Order, error)
}

// UserService manages identities and profiles.
type UserService interface {
	// Register creates a new account and signs the caller in.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// GetProfile returns the user's profile.
	GetProfile(ctx context.Context, userID string) (*model.User, error)

	// UpdateProfile merges the editable fields and returns the updated
	// profile.
	UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error)
}
