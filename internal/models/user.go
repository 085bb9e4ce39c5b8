package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account document in the users collection. PasswordHash is the
// bcrypt hash stored under the legacy "password" field name; it never leaves
// the server in JSON form.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string        `bson:"firstName" json:"firstName"`
	LastName     string        `bson:"lastName" json:"lastName"`
	Email        string        `bson:"email" json:"email"`
	Username     string        `bson:"username" json:"username"`
	PasswordHash string        `bson:"password" json:"-"`
	PhoneNumber  string        `bson:"phoneNumber" json:"phoneNumber"`
	ZipCode      string        `bson:"zipCode" json:"zipCode"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
}

// PublicUser is the projection of a User that auth responses expose.
type PublicUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public returns the response-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
