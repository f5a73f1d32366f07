package testutil

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a test organization with the given name.
// Returns the created organization with its generated ID.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		OrgID:     fmt.Sprintf("org_%s", uuid.NewString()[:8]),
		Name:      name,
		NameCI:    text.Fold(name),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("organizations").InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}

	return org
}

// CreateOrganizationWithPlan creates a test organization linked to a plan
// document, for exercising the details lookup.
func (f *Fixtures) CreateOrganizationWithPlan(ctx context.Context, name, planName string, maxActiveJobs int) (models.Organization, models.OrganizationPlan) {
	f.t.Helper()

	plan := models.OrganizationPlan{
		ID:            primitive.NewObjectID(),
		Name:          planName,
		MaxActiveJobs: maxActiveJobs,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("organization_plans").InsertOne(ctx, plan); err != nil {
		f.t.Fatalf("failed to create test plan: %v", err)
	}

	org := f.CreateOrganization(ctx, name)
	planID := plan.ID.Hex()
	_, err := f.db.Collection("organizations").UpdateOne(ctx,
		bson.M{"id": org.OrgID},
		bson.M{"$set": bson.M{"plan_id": planID}},
	)
	if err != nil {
		f.t.Fatalf("failed to attach plan to organization: %v", err)
	}
	org.PlanID = planID

	return org, plan
}

// CreateMember creates a test member of the given organization.
func (f *Fixtures) CreateMember(ctx context.Context, name, email, role, orgID string) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	member := models.Member{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		EmailCI:   text.Fold(email),
		Role:      role,
		OrgID:     orgID,
		CreatedAt: now,
	}

	_, err := f.db.Collection("members").InsertOne(ctx, member)
	if err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}

	return member
}

// CreateCareer inserts a career directly, bypassing store validation.
// Useful for seeding list and lookup tests.
func (f *Fixtures) CreateCareer(ctx context.Context, orgID, title, status string) models.Career {
	f.t.Helper()

	now := time.Now().UTC()
	career := models.Career{
		ID:               primitive.NewObjectID(),
		CareerID:         fmt.Sprintf("career_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		OrgID:            orgID,
		JobTitle:         title,
		JobTitleCI:       text.Fold(title),
		Description:      "<p>A role seeded for testing purposes.</p>",
		Location:         "Manila",
		WorkSetup:        "Hybrid",
		Status:           status,
		ScreeningSetting: models.DefaultScreeningSetting,
		CreatedAt:        now,
	}

	_, err := f.db.Collection("careers").InsertOne(ctx, career)
	if err != nil {
		f.t.Fatalf("failed to create test career: %v", err)
	}

	return career
}

// CreateDraft inserts a wizard draft for the given org and user.
func (f *Fixtures) CreateDraft(ctx context.Context, orgID, userEmail string, step int, data bson.M) models.CareerDraft {
	f.t.Helper()

	now := time.Now().UTC()
	draft := models.CareerDraft{
		ID:          primitive.NewObjectID(),
		OrgID:       orgID,
		UserEmail:   userEmail,
		DraftData:   data,
		CurrentStep: step,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("career_drafts").InsertOne(ctx, draft)
	if err != nil {
		f.t.Fatalf("failed to create test draft: %v", err)
	}

	return draft
}
