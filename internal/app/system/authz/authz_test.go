package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/authz"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/testutil"
)

func setupGate(t *testing.T) (*authz.AdminGate, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	gate := authz.NewAdminGate(userstore.New(db), httpjson.NewTranslator(logger, false), logger)
	return gate, testutil.NewFixtures(t, db)
}

func gated(gate *authz.AdminGate) http.Handler {
	return gate.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	gate, fixtures := setupGate(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "plain@test.com", "standard", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", user.ID, user.Email)
	rec := httptest.NewRecorder()
	gated(gate).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	gate, fixtures := setupGate(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "boss@test.com", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", admin.ID, admin.Email)
	rec := httptest.NewRecorder()
	gated(gate).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

// Elevation is read from the database on every request, so a caller
// approved after their token was issued gains access without logging in
// again, and a demoted caller loses it immediately.
func TestRequireAdmin_ReadsCurrentElevation(t *testing.T) {
	gate, fixtures := setupGate(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "late@test.com", "standard", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", user.ID, user.Email)
	rec := httptest.NewRecorder()
	gated(gate).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("before approval: status got %d, want %d", rec.Code, http.StatusForbidden)
	}

	// Approve without re-authenticating.
	if _, err := userstore.New(fixtures.DB()).Approve(ctx, user.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	req = testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", user.ID, user.Email)
	rec = httptest.NewRecorder()
	gated(gate).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("after approval: status got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAdmin_DeletedSubject(t *testing.T) {
	gate, fixtures := setupGate(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "gone@test.com", "pw-longenough")
	if err := fixtures.DB().Collection("users").Drop(ctx); err != nil {
		t.Fatalf("drop users: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", admin.ID, admin.Email)
	rec := httptest.NewRecorder()
	gated(gate).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
