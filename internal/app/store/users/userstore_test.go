package userstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/indexes"
	"github.com/gracegate/churchhub/internal/domain/models"
	"github.com/gracegate/churchhub/internal/testutil"
)

func setupStore(t *testing.T) *userstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return userstore.New(db)
}

func sampleUser(email string) models.User {
	return models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleStandard,
	}
}

func TestCreate_Defaults(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := sampleUser("defaults@test.com")
	u.Role = ""
	u.IsAdmin = true // must be ignored

	created, err := store.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Role != models.RoleStandard {
		t.Errorf("role: got %q, want %q", created.Role, models.RoleStandard)
	}
	if created.IsAdmin {
		t.Error("expected IsAdmin to start false regardless of input")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, sampleUser("dup@test.com")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Email comparison is case-insensitive after normalization.
	_, err := store.Create(ctx, sampleUser("DUP@test.com"))
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_PastorRequiresChurchSelection(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := sampleUser("pastor@test.com")
	u.Role = models.RolePastor

	if _, err := store.Create(ctx, u); err == nil {
		t.Error("expected pastor without church selection to be rejected")
	}

	u.ChurchSelection = "Hope Chapel"
	if _, err := store.Create(ctx, u); err != nil {
		t.Errorf("expected pastor with church selection to be accepted: %v", err)
	}
}

func TestCreate_ITRequiresChurchSelection(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := sampleUser("it@test.com")
	u.Role = models.RoleIT

	if _, err := store.Create(ctx, u); err == nil {
		t.Error("expected IT account without church selection to be rejected")
	}
}

func TestCreate_BadRole(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := sampleUser("badrole@test.com")
	u.Role = "superuser"

	if _, err := store.Create(ctx, u); err == nil {
		t.Error("expected unknown role to be rejected")
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, sampleUser("casefold@test.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByEmail(ctx, "CaseFold@Test.Com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.Email != "casefold@test.com" {
		t.Errorf("email: got %q", got.Email)
	}
}

func TestUpdateProfile_PartialOverlay(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, sampleUser("overlay@test.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first := "Nadia"
	got, err := store.UpdateProfile(ctx, created.ID, userstore.ProfileUpdate{FirstName: &first})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if got.FirstName != "Nadia" {
		t.Errorf("first name: got %q", got.FirstName)
	}
	if got.LastName != "User" {
		t.Errorf("last name should be untouched: got %q", got.LastName)
	}
}

func TestUpdateProfile_DuplicateEmail(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, sampleUser("taken@test.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other, err := store.Create(ctx, sampleUser("other@test.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	taken := "taken@test.com"
	_, err = store.UpdateProfile(ctx, other.ID, userstore.ProfileUpdate{Email: &taken})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdatePassword_MissingUser(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.UpdatePassword(ctx, primitive.NewObjectID(), "newhash")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestListPending_ExcludesApproved(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pending, err := store.Create(ctx, sampleUser("pending@test.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	approved, err := store.Create(ctx, sampleUser("approved@test.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Approve(ctx, approved.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	rows, err := store.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 pending user, got %d", len(rows))
	}
	if rows[0].ID != pending.ID {
		t.Errorf("pending user: got %s, want %s", rows[0].ID.Hex(), pending.ID.Hex())
	}
}

func TestApprove_SetsFlag(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, sampleUser("flag@test.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Approve(ctx, created.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if !got.IsAdmin {
		t.Error("expected IsAdmin to be set")
	}
}

func TestApprove_MissingUser(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Approve(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestPromoteByEmail(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, sampleUser("promote@test.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.PromoteByEmail(ctx, "Promote@Test.Com")
	if err != nil {
		t.Fatalf("PromoteByEmail failed: %v", err)
	}
	if n != 1 {
		t.Errorf("modified count: got %d, want 1", n)
	}

	// Second promotion is a no-op.
	n, err = store.PromoteByEmail(ctx, "promote@test.com")
	if err != nil {
		t.Fatalf("second PromoteByEmail failed: %v", err)
	}
	if n != 0 {
		t.Errorf("modified count: got %d, want 0", n)
	}
}
