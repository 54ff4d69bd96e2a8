package model

// FoodItem represents a read-only catalog entry in the food collection.
type FoodItem struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	ImageURL    string  `bson:"imageURL" json:"imageURL"`
	Category    string  `bson:"category" json:"category"`
}
