package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/store/audit"
	"github.com/launchpadjia/careerhub/internal/app/system/auditlog"
	"github.com/launchpadjia/careerhub/internal/testutil"
)

func TestLogger_NilLogger(t *testing.T) {
	// nil logger should be a no-op (not panic)
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("POST", "/api/careers", nil)

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.CareerCreated(ctx, req, "a@b.com", "org-1", "career_1", "inactive")
	logger.SuspiciousInput(ctx, req, "a@b.com", "org-1", "jobTitle")
}

func TestLogger_Log_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{
		Admin:    "off",
		Security: "off",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventCareerCreated,
		OrgID:     "org-1",
		Success:   true,
	})

	events, err := store.Query(ctx, audit.QueryFilter{OrgID: "org-1"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 0 {
		t.Error("expected no events when config is 'off'")
	}
}

func TestLogger_Log_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{
		Admin:    "db",
		Security: "db",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventCareerPublished,
		OrgID:     "org-1",
		CareerID:  "career_1",
		Success:   true,
	})

	events, err := store.Query(ctx, audit.QueryFilter{OrgID: "org-1"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].EventType != audit.EventCareerPublished {
		t.Errorf("unexpected event type %q", events[0].EventType)
	}
}

func TestLogger_SuspiciousInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{
		Admin:    "db",
		Security: "db",
	})

	req := httptest.NewRequest("POST", "/api/careers", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	logger.SuspiciousInput(ctx, req, "evil@test.com", "org-2", "jobDescription")

	events, err := store.Query(ctx, audit.QueryFilter{
		OrgID:    "org-2",
		Category: audit.CategorySecurity,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 security event, got %d", len(events))
	}
	ev := events[0]
	if ev.Success {
		t.Error("suspicious input events should be recorded as failures")
	}
	if ev.IP != "203.0.113.9" {
		t.Errorf("expected forwarded IP, got %q", ev.IP)
	}
	if ev.Details["field"] != "jobDescription" {
		t.Errorf("expected field detail, got %v", ev.Details)
	}
}
