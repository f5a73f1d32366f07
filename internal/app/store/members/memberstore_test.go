// internal/app/store/members/memberstore_test.go
package memberstore

import (
	"testing"
	"time"

	"github.com/launchpadjia/careerhub/internal/domain/models"
	"github.com/launchpadjia/careerhub/internal/testutil"
)

func TestUpsertIdentityCreatesMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	store := New(db)

	m, err := store.UpsertIdentity(ctx, models.Member{
		Name:  "Rina Cruz",
		Email: "Rina.Cruz@Example.com",
		Role:  models.MemberRoleRecruiter,
		OrgID: "org_upsert",
	})
	if err != nil {
		t.Fatalf("UpsertIdentity: %v", err)
	}
	if m.ID.IsZero() {
		t.Error("expected _id to be populated")
	}
	if m.Role != models.MemberRoleRecruiter {
		t.Errorf("got role %q", m.Role)
	}
	if m.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestUpsertIdentityKeepsRoleAndOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	store := New(db)

	first, err := store.UpsertIdentity(ctx, models.Member{
		Name:  "Old Name",
		Email: "keep@example.com",
		Role:  models.MemberRoleOwner,
		OrgID: "org_keep",
	})
	if err != nil {
		t.Fatalf("first UpsertIdentity: %v", err)
	}

	second, err := store.UpsertIdentity(ctx, models.Member{
		Name:  "New Name",
		Email: "KEEP@example.com",
		Role:  models.MemberRoleRecruiter,
		OrgID: "org_other",
	})
	if err != nil {
		t.Fatalf("second UpsertIdentity: %v", err)
	}

	if second.ID != first.ID {
		t.Error("expected the same member document")
	}
	if second.Name != "New Name" {
		t.Errorf("expected name refreshed, got %q", second.Name)
	}
	if second.Role != models.MemberRoleOwner {
		t.Errorf("expected role preserved, got %q", second.Role)
	}
	if second.OrgID != "org_keep" {
		t.Errorf("expected org preserved, got %q", second.OrgID)
	}
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	store := New(db)

	fx.CreateMember(ctx, "Case Test", "casing@example.com", models.MemberRoleRecruiter, "org_case")

	m, err := store.FindByEmail(ctx, "CASING@Example.COM")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if m.Name != "Case Test" {
		t.Errorf("got name %q", m.Name)
	}

	if _, err := store.FindByEmail(ctx, "nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTouchLastSeen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	store := New(db)

	m := fx.CreateMember(ctx, "Seen Test", "seen@example.com", models.MemberRoleRecruiter, "org_seen")

	before := time.Now().UTC().Add(-time.Second)
	if err := store.TouchLastSeen(ctx, m.ID); err != nil {
		t.Fatalf("TouchLastSeen: %v", err)
	}

	got, err := store.FindByEmail(ctx, "seen@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if !got.LastSeen.After(before) {
		t.Errorf("expected last_seen bumped, got %v", got.LastSeen)
	}
}

func TestListByOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	store := New(db)

	fx.CreateMember(ctx, "A", "a@example.com", models.MemberRoleOwner, "org_list")
	fx.CreateMember(ctx, "B", "b@example.com", models.MemberRoleRecruiter, "org_list")
	fx.CreateMember(ctx, "C", "c@example.com", models.MemberRoleRecruiter, "org_elsewhere")

	members, err := store.ListByOrg(ctx, "org_list")
	if err != nil {
		t.Fatalf("ListByOrg: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	for _, m := range members {
		if m.OrgID != "org_list" {
			t.Errorf("unexpected member %q in org %q", m.Email, m.OrgID)
		}
	}
}
