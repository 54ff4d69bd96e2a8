package repository

import (
	"context"

	"chopnow/internal/model"
)

// The store exposes a four-verb contract: query by equality predicate,
// insert (returns a generated id), merge-update by id, delete by id. No
// range queries, joins or cross-document transactions are used.

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Insert creates a new user document.
	Insert(ctx context.Context, user *model.User) error

	// GetByUID retrieves the user document for an authenticated identity.
	// Returns nil when no matching document exists.
	GetByUID(ctx context.Context, uid string) (*model.User, error)

	// GetByEmail retrieves a user document by email address.
	// Returns nil when no matching document exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateProfile merges the editable profile fields into the user
	// document. Empty fields are left untouched.
	UpdateProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) error
}

// FoodRepository defines the interface for catalog data access operations.
type FoodRepository interface {
	// GetAll retrieves the full catalog. No pagination: a full collection
	// scan is acceptable at this scale.
	GetAll(ctx context.Context) ([]model.FoodItem, error)

	// GetByID retrieves a single catalog entry by its id.
	// Returns nil when no matching document exists.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)

	// Upsert inserts or replaces a catalog entry keyed on its id.
	Upsert(ctx context.Context, item model.FoodItem) error
}

// CartRepository defines the interface for cart line data access operations.
type CartRepository interface {
	// Insert creates a new cart line and fills in its generated id.
	Insert(ctx context.Context, line *model.CartLine) error

	// GetByID retrieves a single cart line by its id.
	// Returns nil when no matching document exists.
	GetByID(ctx context.Context, lineID string) (*model.CartLine, error)

	// GetByUser retrieves all cart lines belonging to a user.
	GetByUser(ctx context.Context, uid string) ([]model.CartLine, error)

	// UpdateQuantity persists a new quantity on a cart line. Callers must
	// never pass a quantity below one; zero quantity means delete.
	UpdateQuantity(ctx context.Context, lineID string, quantity int) error

	// Delete removes a cart line by its id.
	Delete(ctx context.Context, lineID string) error

	// DeleteByUserAndFood removes every cart line for (uid, food_id) in a
	// single batched delete and reports how many were removed.
	DeleteByUserAndFood(ctx context.Context, uid, foodID string) (int64, error)
}

// SavedItemRepository defines the interface for wish-list data access
// operations.
type SavedItemRepository interface {
	// Insert creates a new saved-item document.
	Insert(ctx context.Context, item *model.SavedItem) error

	// GetByUser retrieves all saved items belonging to a user.
	GetByUser(ctx context.Context, uid string) ([]model.SavedItem, error)

	// DeleteByUserAndFood removes every saved item for (uid, food_id) in a
	// single batched delete and reports how many were removed.
	DeleteByUserAndFood(ctx context.Context, uid, foodID string) (int64, error)
}

// OrderRepository defines the interface for order snapshot data access
// operations. Orders are write-once: there is deliberately no update or
// delete.
type OrderRepository interface {
	// Insert creates a new order snapshot and fills in its generated id.
	Insert(ctx context.Context, order *model.Order) error

	// GetByUser retrieves all orders whose embedded user snapshot carries
	// the given uid.
	GetByUser(ctx context.Context, uid string) ([]model.Order, error)

	// GetByReference retrieves the order created for a payment reference.
	// Returns nil when no matching document exists.
	GetByReference(ctx context.Context, reference string) (*model.Order, error)
}
