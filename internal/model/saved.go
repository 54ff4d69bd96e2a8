package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SavedItem is a user's wish-list membership record for a catalog item.
// Presence or absence of a matching (uid, food_id) document is the sole
// source of truth for the liked state; there is no separate boolean field.
type SavedItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID      string             `bson:"uid" json:"uid"`
	FoodID   string             `bson:"food_id" json:"food_id"`
	Price    float64            `bson:"price" json:"price"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"imageURL" json:"imageURL"`
}

// ToggleSavedRequest names the catalog item whose saved state flips.
type ToggleSavedRequest struct {
	FoodID string `json:"foodId"`
}

// ToggleSavedResponse reports the resulting state after a toggle.
type ToggleSavedResponse struct {
	FoodID string `json:"foodId"`
	Saved  bool   `json:"saved"`
}
