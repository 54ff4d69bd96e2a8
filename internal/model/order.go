package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is an immutable snapshot of cart contents and user details captured
// at successful payment. It is never mutated or deleted after creation, and
// later cart mutations do not affect it.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FoodItems        []CartLine         `bson:"foodItems" json:"foodItems"`
	TotalPrice       float64            `bson:"totalPrice" json:"totalPrice"`
	User             User               `bson:"user" json:"user"`
	PaymentReference string             `bson:"paymentReference" json:"paymentReference"`
	PaymentStatus    string             `bson:"paymentStatus" json:"paymentStatus"`
	Timestamp        time.Time          `bson:"timestamp" json:"timestamp"`
}

// CheckoutSnapshot is the cart state handed to the payment flow. Building it
// does not clear the cart.
type CheckoutSnapshot struct {
	User       User       `json:"user"`
	Lines      []CartLine `json:"foodItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// OrderRow is one flattened line of order history: a single purchased item
// annotated with its parent order's id, payment reference and status.
type OrderRow struct {
	CartLine
	OrderID          string `json:"orderId"`
	Index            int    `json:"index"`
	PaymentReference string `json:"paymentReference"`
	PaymentStatus    string `json:"paymentStatus"`
}

// Key returns the composite identity of a flattened row. food_id alone is
// not unique within a multi-order list.
func (r OrderRow) Key() string {
	return fmt.Sprintf("%s-%s-%d", r.OrderID, r.FoodID, r.Index)
}

// CheckoutResponse is returned when a payment is initialised.
type CheckoutResponse struct {
	Reference        string  `json:"reference"`
	AuthorizationURL string  `json:"authorizationUrl"`
	TotalPrice       float64 `json:"totalPrice"`
}

// VerifyPaymentRequest names the gateway reference to verify.
type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
}
