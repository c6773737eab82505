package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/gracegate/churchhub/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// HashPassword bcrypts a plaintext for seeding credentials. Tests use a
// low cost so suites stay fast.
func HashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

// CreateUser creates a test user with the given role and password.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, email, role, password string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: HashPassword(f.t, password),
		Role:         role,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == models.RolePastor || role == models.RoleIT {
		user.ChurchSelection = "Grace Fellowship"
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates an approved administrator account.
func (f *Fixtures) CreateAdmin(ctx context.Context, email, password string) models.User {
	f.t.Helper()

	user := f.CreateUser(ctx, email, models.RoleIT, password)
	_, err := f.db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"is_admin": true}},
	)
	if err != nil {
		f.t.Fatalf("failed to elevate test user: %v", err)
	}
	user.IsAdmin = true
	return user
}

// CreateChurch creates a test church owned by the given user. The
// document satisfies the creation invariants: every array field has at
// least one element.
func (f *Fixtures) CreateChurch(ctx context.Context, name string, ownerID primitive.ObjectID) models.Church {
	f.t.Helper()

	now := time.Now().UTC()
	ch := models.Church{
		ID:       primitive.NewObjectID(),
		Name:     name,
		NameCI:   text.Fold(name),
		Location: "123 Chapel Lane",
		Principal: models.Principal{
			Name: "Rev. Jordan Wells",
		},
		Securities: models.Securities{
			Deacons:  []models.Official{{Names: "Deacon One"}},
			Trustees: []models.Official{{Names: "Trustee One"}},
		},
		OldServices:  []models.Service{{Title: "Harvest Service", Preacher: "Rev. Jordan Wells", Sermon: "On giving", Timestamp: now}},
		LiveServices: []models.Service{{Title: "Sunday Live", Preacher: "Rev. Jordan Wells", Sermon: "On hope", Timestamp: now}},
		Gallery:      []string{"/files/gallery/one.jpg"},
		Banner:       []string{"/files/banner/one.jpg"},
		Songs:        []models.Song{{Title: "Amazing Grace", URL: "https://example.com/amazing-grace.mp3"}},
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("churches").InsertOne(ctx, ch); err != nil {
		f.t.Fatalf("failed to create test church: %v", err)
	}
	return ch
}
