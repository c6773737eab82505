package bootstrap

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gracegate/churchhub/internal/domain/models"
	"github.com/gracegate/churchhub/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	existing := models.User{
		ID:           primitive.NewObjectID(),
		FirstName:    "Pat",
		LastName:     "Admin",
		Email:        "admin@test.com",
		PasswordHash: "x",
		Role:         models.RoleStandard,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, existing); err != nil {
		t.Fatalf("failed to create existing user: %v", err)
	}

	deps := DBDeps{ChurchHubMongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "admin@test.com", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if !user.IsAdmin {
		t.Error("expected user to be promoted to admin")
	}
}

func TestEnsureAdmin_MissingAccountIsNotAnError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{ChurchHubMongoDatabase: db}

	// The promotion applies on a later startup once the account exists.
	if err := ensureAdmin(ctx, deps, "nobody@test.com", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "nobody@test.com"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Error("expected no account to be created by the bootstrap")
	}
}

func TestEnsureAdmin_AlreadyAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	existing := models.User{
		ID:           primitive.NewObjectID(),
		FirstName:    "Sam",
		LastName:     "Root",
		Email:        "root@test.com",
		PasswordHash: "x",
		Role:         models.RoleIT,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, existing); err != nil {
		t.Fatalf("failed to create existing user: %v", err)
	}

	deps := DBDeps{ChurchHubMongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "root@test.com", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if !user.IsAdmin {
		t.Error("expected user to remain admin")
	}
}
