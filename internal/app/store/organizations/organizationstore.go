// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound              = errors.New("organization not found")
	ErrDuplicateOrganization = errors.New("an organization with this id already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.NameCI = text.Fold(org.Name)
	if org.Status == "" {
		org.Status = "active"
	}
	org.CreatedAt = now
	org.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Organization{}, ErrDuplicateOrganization
		}
		return models.Organization{}, err
	}
	return org, nil
}

// GetByOrgID loads an organization by its external id.
func (s *Store) GetByOrgID(ctx context.Context, orgID string) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"id": orgID}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, ErrNotFound
	}
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// GetDetails loads an organization with its plan resolved. Plans are keyed
// by ObjectID hex strings on the org document, so the lookup converts the
// reference before joining.
func (s *Store) GetDetails(ctx context.Context, orgID string) (models.OrganizationDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id": orgID}}},
		{{Key: "$addFields", Value: bson.M{
			"plan_oid": bson.M{"$convert": bson.M{
				"input":   "$plan_id",
				"to":      "objectId",
				"onError": nil,
				"onNull":  nil,
			}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "organization_plans",
			"localField":   "plan_oid",
			"foreignField": "_id",
			"as":           "plan_docs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"plan": bson.M{"$arrayElemAt": bson.A{"$plan_docs", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"plan_docs": 0, "plan_oid": 0}}},
		{{Key: "$limit", Value: 1}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return models.OrganizationDetails{}, err
	}
	defer cur.Close(ctx)

	var results []models.OrganizationDetails
	if err := cur.All(ctx, &results); err != nil {
		return models.OrganizationDetails{}, err
	}
	if len(results) == 0 {
		return models.OrganizationDetails{}, ErrNotFound
	}
	return results[0], nil
}

// Update modifies an organization's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, orgID string, org models.Organization) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if org.Name != "" {
		set["name"] = org.Name
		set["name_ci"] = text.Fold(org.Name)
	}
	if org.LogoURL != "" {
		set["logo_url"] = org.LogoURL
	}
	if org.Status != "" {
		set["status"] = org.Status
	}
	if org.PlanID != "" {
		set["plan_id"] = org.PlanID
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"id": orgID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
