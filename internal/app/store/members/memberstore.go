// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("member not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

// FindByEmail looks a member up by email, case-insensitively.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.Member{}, ErrNotFound
	}
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// UpsertIdentity records a sign-in from the upstream auth provider. An
// existing member keeps their role and org binding; name and image are
// refreshed from the provider on every sign-in. A first-time sign-in
// creates the member with the given role and org.
func (s *Store) UpsertIdentity(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	filter := bson.M{"email_ci": text.Fold(m.Email)}
	update := bson.M{
		"$set": bson.M{
			"name":      m.Name,
			"image":     m.Image,
			"last_seen": now,
		},
		"$setOnInsert": bson.M{
			"email":      m.Email,
			"email_ci":   text.Fold(m.Email),
			"role":       m.Role,
			"org_id":     m.OrgID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Member
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return models.Member{}, err
	}
	return out, nil
}

// TouchLastSeen bumps the member's activity timestamp.
func (s *Store) TouchLastSeen(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_seen": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOrg returns the members of an organization, most recently created
// first.
func (s *Store) ListByOrg(ctx context.Context, orgID string) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"org_id": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
