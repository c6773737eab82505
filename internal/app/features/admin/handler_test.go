package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminfeature "github.com/gracegate/churchhub/internal/app/features/admin"
	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
	"github.com/gracegate/churchhub/internal/testutil"
)

func setupHandler(t *testing.T) (*adminfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	resp := httpjson.NewTranslator(logger, false)
	audit := auditlog.New(auditstore.New(db), logger, auditlog.Config{Auth: "off", Admin: "db"})

	mail, err := mailer.New(mailer.Config{Enabled: false}, logger)
	if err != nil {
		t.Fatalf("mailer.New failed: %v", err)
	}

	return adminfeature.NewHandler(db, resp, audit, mail, "ChurchHub", logger), db
}

func TestServePendingUsers(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	admin := fixtures.CreateAdmin(ctx, "boss@test.com", "pw-longenough")
	pending := fixtures.CreateUser(ctx, "pending@test.com", "standard", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("GET", "/admin/users/pending", admin.ID, admin.Email)
	rec := httptest.NewRecorder()

	h.ServePendingUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Results int `json:"results"`
		Data    struct {
			Users []struct {
				ID      string `json:"id"`
				IsAdmin bool   `json:"isAdmin"`
			} `json:"users"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Results != 1 {
		t.Fatalf("expected 1 pending user, got %d", resp.Results)
	}
	if resp.Data.Users[0].ID != pending.ID.Hex() {
		t.Errorf("pending user: got %s, want %s", resp.Data.Users[0].ID, pending.ID.Hex())
	}
}

func TestHandleApproveUser(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	admin := fixtures.CreateAdmin(ctx, "boss@test.com", "pw-longenough")
	target := fixtures.CreateUser(ctx, "target@test.com", "standard", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("PATCH", "/admin/users/"+target.ID.Hex()+"/approve", admin.ID, admin.Email)
	req = testutil.WithChiURLParam(req, "userID", target.ID.Hex())
	rec := httptest.NewRecorder()

	h.HandleApproveUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var doc struct {
		IsAdmin bool `bson:"is_admin"`
	}
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": target.ID}).Decode(&doc); err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !doc.IsAdmin {
		t.Error("expected the target to be elevated")
	}

	// The approval is recorded with the acting administrator.
	var event struct {
		EventType string              `bson:"event_type"`
		ActorID   *primitive.ObjectID `bson:"actor_id"`
	}
	if err := db.Collection("audit_events").FindOne(ctx, bson.M{"event_type": "user_approved"}).Decode(&event); err != nil {
		t.Fatalf("load audit event: %v", err)
	}
	if event.ActorID == nil || *event.ActorID != admin.ID {
		t.Error("expected the audit event to record the acting admin")
	}
}

func TestHandleApproveUser_MissingUser(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	admin := fixtures.CreateAdmin(ctx, "boss@test.com", "pw-longenough")

	missing := primitive.NewObjectID()
	req := testutil.NewAuthenticatedRequest("PATCH", "/admin/users/"+missing.Hex()+"/approve", admin.ID, admin.Email)
	req = testutil.WithChiURLParam(req, "userID", missing.Hex())
	rec := httptest.NewRecorder()

	h.HandleApproveUser(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleApproveUser_BadID(t *testing.T) {
	h, db := setupHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	admin := fixtures.CreateAdmin(ctx, "boss@test.com", "pw-longenough")

	req := testutil.NewAuthenticatedRequest("PATCH", "/admin/users/not-an-id/approve", admin.ID, admin.Email)
	req = testutil.WithChiURLParam(req, "userID", "not-an-id")
	rec := httptest.NewRecorder()

	h.HandleApproveUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
