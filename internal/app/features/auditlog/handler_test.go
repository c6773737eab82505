package auditlog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	auditfeature "github.com/gracegate/churchhub/internal/app/features/auditlog"
	auditstore "github.com/gracegate/churchhub/internal/app/store/audit"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/testutil"
)

func setupHandler(t *testing.T) (*auditfeature.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return auditfeature.NewHandler(db, httpjson.NewTranslator(logger, false), logger), db
}

func seedEvents(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := auditstore.New(db)
	base := time.Now().Add(-time.Hour)
	events := []auditstore.Event{
		{Timestamp: base, Category: auditstore.CategoryAuth, EventType: auditstore.EventLoginSuccess, Success: true},
		{Timestamp: base.Add(time.Minute), Category: auditstore.CategoryAuth, EventType: auditstore.EventLoginFailedWrongPassword},
		{Timestamp: base.Add(2 * time.Minute), Category: auditstore.CategoryAdmin, EventType: auditstore.EventUserApproved, Success: true},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
}

type listBody struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    struct {
		Events []struct {
			EventType string `json:"eventType"`
			Category  string `json:"category"`
		} `json:"events"`
	} `json:"data"`
}

func TestServeList_NewestFirst(t *testing.T) {
	h, db := setupHandler(t)
	seedEvents(t, db)

	req := httptest.NewRequest("GET", "/admin/audit", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp listBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Results != 3 {
		t.Fatalf("results: got %d, want 3", resp.Results)
	}
	if resp.Data.Events[0].EventType != "user_approved" {
		t.Errorf("expected the newest event first, got %s", resp.Data.Events[0].EventType)
	}
}

func TestServeList_CategoryFilter(t *testing.T) {
	h, db := setupHandler(t)
	seedEvents(t, db)

	req := httptest.NewRequest("GET", "/admin/audit?category=auth", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp listBody
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Results != 2 {
		t.Errorf("results: got %d, want 2", resp.Results)
	}
	for _, e := range resp.Data.Events {
		if e.Category != "auth" {
			t.Errorf("unexpected category %q in filtered list", e.Category)
		}
	}
}

func TestServeList_RejectsBadFilters(t *testing.T) {
	h, _ := setupHandler(t)

	for _, target := range []string{
		"/admin/audit?category=gossip",
		"/admin/audit?from=last-tuesday",
		"/admin/audit?user=not-an-id",
	} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		h.ServeList(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}
