// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. "IT" is intentionally uppercase; it is a product term,
// not a value we normalize.
const (
	RoleStandard = "standard"
	RolePastor   = "pastor"
	RoleIT       = "IT"
)

// Avatar is the stored-object descriptor for a user's profile image.
type Avatar struct {
	StorageID string `bson:"storage_id" json:"storageId"`
	URL       string `bson:"url" json:"url"`
}

// User represents a registered account.
//
// NOTE:
//   - PasswordHash is never serialized outward (json:"-").
//   - IsAdmin is set only through the admin approval workflow, never
//     from client input.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"first_name" json:"firstName"`
	LastName     string             `bson:"last_name" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"` // standard | pastor | IT
	IsAdmin      bool               `bson:"is_admin" json:"isAdmin"`

	// ChurchSelection is the free-text affiliation a pastor or IT account
	// names at signup. Optional for standard accounts.
	ChurchSelection string  `bson:"church_selection,omitempty" json:"churchSelection,omitempty"`
	Avatar          *Avatar `bson:"avatar,omitempty" json:"avatar,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DisplayName returns the user's full display name.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
