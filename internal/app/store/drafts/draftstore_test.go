package draftstore_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	draftstore "github.com/launchpadjia/careerhub/internal/app/store/drafts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
	"github.com/launchpadjia/careerhub/internal/testutil"
)

func TestStore_Upsert_InsertThenUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := draftstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Upsert(ctx, "org-1", "jane@test.com", bson.M{"jobTitle": "Engineer"}, 1)
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt on insert")
	}
	if first.CurrentStep != 1 {
		t.Errorf("expected step 1, got %d", first.CurrentStep)
	}

	time.Sleep(5 * time.Millisecond)

	second, err := store.Upsert(ctx, "org-1", "jane@test.com", bson.M{"jobTitle": "Senior Engineer"}, 2)
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("expected the same draft document to be updated")
	}
	if !second.CreatedAt.Truncate(time.Millisecond).Equal(first.CreatedAt.Truncate(time.Millisecond)) {
		t.Errorf("CreatedAt must survive autosaves: %v vs %v", second.CreatedAt, first.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
	if second.DraftData["jobTitle"] != "Senior Engineer" {
		t.Errorf("draft data not replaced: %v", second.DraftData)
	}
}

func TestStore_Upsert_ClampsStep(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := draftstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	draft, err := store.Upsert(ctx, "org-1", "jane@test.com", bson.M{}, 99)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if draft.CurrentStep != models.DraftMaxStep {
		t.Errorf("expected step clamped to %d, got %d", models.DraftMaxStep, draft.CurrentStep)
	}

	draft, err = store.Upsert(ctx, "org-1", "jane@test.com", bson.M{}, -3)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if draft.CurrentStep != models.DraftMinStep {
		t.Errorf("expected step clamped to %d, got %d", models.DraftMinStep, draft.CurrentStep)
	}
}

func TestStore_Upsert_ScopedPerUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := draftstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Upsert(ctx, "org-1", "a@test.com", bson.M{"jobTitle": "A"}, 1); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := store.Upsert(ctx, "org-1", "b@test.com", bson.M{"jobTitle": "B"}, 1); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := store.Upsert(ctx, "org-2", "a@test.com", bson.M{"jobTitle": "A2"}, 1); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	a1, err := store.Get(ctx, "org-1", "a@test.com")
	if err != nil || a1 == nil {
		t.Fatalf("Get failed: %v", err)
	}
	if a1.DraftData["jobTitle"] != "A" {
		t.Errorf("wrong draft: %v", a1.DraftData)
	}

	a2, err := store.Get(ctx, "org-2", "a@test.com")
	if err != nil || a2 == nil {
		t.Fatalf("Get failed: %v", err)
	}
	if a2.DraftData["jobTitle"] != "A2" {
		t.Errorf("wrong draft: %v", a2.DraftData)
	}
}

func TestStore_Get_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := draftstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	draft, err := store.Get(ctx, "org-1", "nobody@test.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if draft != nil {
		t.Errorf("expected nil draft, got %+v", draft)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := draftstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Upsert(ctx, "org-1", "jane@test.com", bson.M{}, 1); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	removed, err := store.Delete(ctx, "org-1", "jane@test.com")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("expected draft to be removed")
	}

	// Idempotent.
	removed, err = store.Delete(ctx, "org-1", "jane@test.com")
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if removed {
		t.Error("expected nothing to remove")
	}
}
