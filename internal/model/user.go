package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one document per authenticated identity in the users collection.
// UID is the foreign key every other per-user document is filtered on.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID          string             `bson:"uid" json:"uid"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	HomeAddress  string             `bson:"home_address" json:"home_address"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Public returns a copy safe to embed in order snapshots and API responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// RegisterRequest represents the sign-up payload.
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	HomeAddress string `json:"home_address"`
	Password    string `json:"password"`
}

// LoginRequest represents the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the editable profile fields. Fields left empty
// are not modified.
type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	HomeAddress string `json:"home_address"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
