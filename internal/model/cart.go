package model

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one persisted record representing a quantity of a single
// catalog item held by one user's cart. Repeated add actions may create
// multiple lines for the same food_id; there is no uniqueness constraint.
type CartLine struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID      string             `bson:"uid" json:"uid"`
	FoodID   string             `bson:"food_id" json:"food_id"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"imageURL" json:"imageURL"`
}

// UnmarshalBSON coerces price and quantity to numbers on the way in. The
// store is schema-less and documents written by older clients carry these
// fields as strings.
func (l *CartLine) UnmarshalBSON(data []byte) error {
	var raw struct {
		ID       primitive.ObjectID `bson:"_id,omitempty"`
		UID      string             `bson:"uid"`
		FoodID   string             `bson:"food_id"`
		Quantity interface{}        `bson:"quantity"`
		Price    interface{}        `bson:"price"`
		Name     string             `bson:"name"`
		ImageURL string             `bson:"imageURL"`
	}

	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.ID = raw.ID
	l.UID = raw.UID
	l.FoodID = raw.FoodID
	l.Quantity = int(NumericValue(raw.Quantity))
	l.Price = NumericValue(raw.Price)
	l.Name = raw.Name
	l.ImageURL = raw.ImageURL

	return nil
}

// NumericValue coerces a weakly typed store value to a float64. Unparseable
// values coerce to zero rather than failing the whole document decode.
func NumericValue(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AddCartItemRequest represents the add-to-cart payload.
type AddCartItemRequest struct {
	FoodID string `json:"foodId"`
}

// ChangeQuantityRequest applies a delta to a cart line's quantity.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartResponse is the cart listing with its derived total.
type CartResponse struct {
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}
