// internal/app/features/orgs/handler_test.go
package orgs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/orgs"
	"github.com/launchpadjia/careerhub/internal/domain/models"
	"github.com/launchpadjia/careerhub/internal/testutil"
)

func TestHandleDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	h := orgs.NewHandler(db, zap.NewNop())

	org, plan := fx.CreateOrganizationWithPlan(ctx, "Detail Org", "Growth", 25)
	fx.CreateCareer(ctx, org.OrgID, "Live Role", models.StatusActive)
	fx.CreateCareer(ctx, org.OrgID, "Draft Role", models.StatusInactive)

	req := testutil.NewJSONRequest(t, "POST", "/api/orgs/details", map[string]any{"orgID": org.OrgID})
	req = testutil.WithUser(req, testutil.AdminUser(""))
	rec := httptest.NewRecorder()
	h.HandleDetails(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var details struct {
		models.OrganizationDetails
		ActiveCareers int64 `json:"activeCareers"`
	}
	testutil.DecodeJSON(t, rec, &details)
	if details.Name != "Detail Org" {
		t.Errorf("got name %q", details.Name)
	}
	if details.Plan == nil || details.Plan.Name != plan.Name {
		t.Errorf("expected plan %q, got %+v", plan.Name, details.Plan)
	}
	if details.ActiveCareers != 1 {
		t.Errorf("expected 1 active career, got %d", details.ActiveCareers)
	}
}

func TestHandleDetailsScopedToOwnOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	h := orgs.NewHandler(db, zap.NewNop())

	mine := fx.CreateOrganization(ctx, "Mine")
	other := fx.CreateOrganization(ctx, "Other")

	// A recruiter asking for another org still gets their own.
	req := testutil.NewJSONRequest(t, "POST", "/api/orgs/details", map[string]any{"orgID": other.OrgID})
	req = testutil.WithUser(req, testutil.RecruiterUser(mine.OrgID))
	rec := httptest.NewRecorder()
	h.HandleDetails(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var details models.OrganizationDetails
	testutil.DecodeJSON(t, rec, &details)
	if details.OrgID != mine.OrgID {
		t.Errorf("expected own org %q, got %q", mine.OrgID, details.OrgID)
	}
}

func TestHandleDetailsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := orgs.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/orgs/details", map[string]any{"orgID": "org_missing"})
	req = testutil.WithUser(req, testutil.AdminUser(""))
	rec := httptest.NewRecorder()
	h.HandleDetails(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	h := orgs.NewHandler(db, zap.NewNop())

	org := fx.CreateOrganization(ctx, "Member Org")
	fx.CreateMember(ctx, "One", "one@example.com", models.MemberRoleOwner, org.OrgID)
	fx.CreateMember(ctx, "Two", "two@example.com", models.MemberRoleRecruiter, org.OrgID)
	fx.CreateMember(ctx, "Elsewhere", "three@example.com", models.MemberRoleRecruiter, "org_unrelated")

	req := testutil.NewJSONRequest(t, "POST", "/api/orgs/members", map[string]any{"orgID": org.OrgID})
	req = testutil.WithUser(req, testutil.AdminUser(""))
	rec := httptest.NewRecorder()
	h.HandleMembers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var list []models.Member
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 members, got %d", len(list))
	}
}

func TestHandleMembersMissingOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := orgs.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/orgs/members", map[string]any{})
	req = testutil.WithUser(req, testutil.AdminUser(""))
	rec := httptest.NewRecorder()
	h.HandleMembers(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
