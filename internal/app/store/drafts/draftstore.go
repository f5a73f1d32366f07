// internal/app/store/drafts/draftstore.go
package draftstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// Store manages wizard autosave drafts. There is at most one draft per
// (org, user) pair; the unique index backs the upsert.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("career_drafts")}
}

// Upsert writes the caller's draft, replacing any previous one for the same
// org and user. created_at is only set on first insert so the draft's age
// survives repeated autosaves.
func (s *Store) Upsert(ctx context.Context, orgID, userEmail string, data bson.M, currentStep int) (models.CareerDraft, error) {
	now := time.Now().UTC()
	step := models.ClampStep(currentStep)

	filter := bson.M{"org_id": orgID, "user_email": userEmail}
	update := bson.M{
		"$set": bson.M{
			"draft_data":   data,
			"current_step": step,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"org_id":     orgID,
			"user_email": userEmail,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var draft models.CareerDraft
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&draft); err != nil {
		return models.CareerDraft{}, err
	}
	return draft, nil
}

// Get returns the caller's draft, or nil when none exists. A missing draft
// is a normal state, not an error.
func (s *Store) Get(ctx context.Context, orgID, userEmail string) (*models.CareerDraft, error) {
	var draft models.CareerDraft
	err := s.c.FindOne(ctx, bson.M{"org_id": orgID, "user_email": userEmail}).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// Delete discards the caller's draft. Deleting an absent draft succeeds;
// the result reports whether anything was removed.
func (s *Store) Delete(ctx context.Context, orgID, userEmail string) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"org_id": orgID, "user_email": userEmail})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
