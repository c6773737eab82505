// internal/domain/models/church.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal describes the church's leader.
type Principal struct {
	Name        string `bson:"name" json:"name"`
	Spouse      string `bson:"spouse,omitempty" json:"spouse,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Official is one entry in the securities block (a deacon or trustee).
type Official struct {
	Names       string `bson:"names" json:"names"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

// Securities groups the church's appointed officials.
type Securities struct {
	Deacons  []Official `bson:"deacons" json:"deacons"`
	Trustees []Official `bson:"trustees" json:"trustees"`
}

// Service is one recorded or scheduled service.
type Service struct {
	Title     string    `bson:"title" json:"title"`
	Preacher  string    `bson:"preacher" json:"preacher"`
	Sermon    string    `bson:"sermon" json:"sermon"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Song is one entry in the church's song list.
type Song struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

// Church is the primary managed document. Array fields keep their
// submitted order; updates replace a field wholesale except for the
// dedicated remove-by-index operations.
type Church struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Location   string             `bson:"location" json:"location"`
	Principal  Principal          `bson:"principal" json:"principal"`
	Securities Securities         `bson:"securities" json:"securities"`

	OldServices  []Service `bson:"old_services" json:"oldServices"`
	LiveServices []Service `bson:"live_services" json:"liveServices"`
	Gallery      []string  `bson:"gallery" json:"gallery"`
	Banner       []string  `bson:"banner" json:"banner"`
	Songs        []Song    `bson:"songs" json:"songs"`
	Logo         string    `bson:"logo,omitempty" json:"logo,omitempty"`

	// OwnerID is the creating user; churches are mutated only by their owner.
	OwnerID primitive.ObjectID `bson:"owner_id" json:"ownerId"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ChurchSummary is the restricted projection used by the public listing.
// It must never grow beyond id and name.
type ChurchSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}
