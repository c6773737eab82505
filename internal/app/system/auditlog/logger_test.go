package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gracegate/churchhub/internal/app/store/audit"
	"github.com/gracegate/churchhub/internal/app/system/auditlog"
	"github.com/gracegate/churchhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestLogger_NilLogger(t *testing.T) {
	// nil logger should be a no-op (not panic)
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("GET", "/", nil)

	// These should all be no-ops, not panic
	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.LoginSuccess(ctx, req, primitive.NewObjectID(), "user@example.com")
	logger.PasswordChanged(ctx, req, primitive.NewObjectID())
}

func TestLogger_Log_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, auditlog.Config{
		Auth:  "off",
		Admin: "off",
	})

	userID := primitive.NewObjectID()
	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		UserID:    &userID,
		Success:   true,
	})

	// Verify nothing was logged to DB
	events, err := store.GetByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 0 {
		t.Error("expected no events when config is 'off'")
	}
}

func TestLogger_Log_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	logger := auditlog.New(store, zapLog, auditlog.Config{
		Auth:  "db",
		Admin: "db",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		UserID:    &userID,
		Success:   true,
	})

	// Verify event was logged to DB
	events, err := store.GetByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestLogger_Log_ConfigLogOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	logger := auditlog.New(store, zapLog, auditlog.Config{
		Auth:  "log",
		Admin: "log",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		UserID:    &userID,
		Success:   true,
	})

	// "log" means zap only; nothing should reach the DB
	events, err := store.GetByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 0 {
		t.Error("expected no DB events when config is 'log'")
	}
}

func TestLogger_Signup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, auditlog.Config{
		Auth:  "db",
		Admin: "db",
	})

	userID := primitive.NewObjectID()
	req := httptest.NewRequest("POST", "/auth/signup", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	logger.Signup(ctx, req, userID, "pastor@example.com", "pastor")

	events, err := store.GetByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.EventType != audit.EventSignup {
		t.Errorf("expected %q, got %q", audit.EventSignup, ev.EventType)
	}
	if ev.IP != "203.0.113.9" {
		t.Errorf("expected forwarded IP, got %q", ev.IP)
	}
	if ev.Details["role"] != "pastor" {
		t.Errorf("expected role detail, got %q", ev.Details["role"])
	}
}

func TestLogger_UserApproved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, auditlog.Config{
		Auth:  "db",
		Admin: "db",
	})

	actorID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()
	req := httptest.NewRequest("PATCH", "/admin/users/approve", nil)

	logger.UserApproved(ctx, req, actorID, targetID, "pending@example.com")

	events, err := store.GetByUser(ctx, targetID, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Category != audit.CategoryAdmin {
		t.Errorf("expected admin category, got %q", ev.Category)
	}
	if ev.ActorID == nil || *ev.ActorID != actorID {
		t.Error("expected actor to be recorded")
	}
}
