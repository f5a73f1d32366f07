// internal/app/store/careers/careerstore.go
package careerstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/launchpadjia/careerhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrNotFound is returned when no career matches the org and career id.
	ErrNotFound = errors.New("career not found")

	// ErrDuplicateID is returned when a generated career id collides, which
	// the unique index turns into a retryable insert failure.
	ErrDuplicateID = errors.New("career id already exists")
)

// PublishError reports which required fields block a publish. Publishing an
// incomplete posting is rejected as a whole; nothing is written.
type PublishError struct {
	Missing []string
}

func (e *PublishError) Error() string {
	return "career cannot be published: missing " + strings.Join(e.Missing, ", ")
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("careers")}
}

// GenerateID creates a new external career identifier. The millisecond
// timestamp keeps ids roughly sortable; the random suffix breaks ties.
func GenerateID() string {
	return fmt.Sprintf("career_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// checkPublishable collects the fields a posting must carry before it can go
// live on the public board.
func checkPublishable(c models.Career) *PublishError {
	var missing []string
	if strings.TrimSpace(c.JobTitle) == "" {
		missing = append(missing, "job title")
	}
	if strings.TrimSpace(c.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(c.WorkSetup) == "" {
		missing = append(missing, "work setup")
	}
	if c.TotalQuestions() == 0 {
		missing = append(missing, "interview questions")
	}
	if c.MinimumSalary != nil && c.MaximumSalary != nil && *c.MinimumSalary > *c.MaximumSalary {
		missing = append(missing, "valid salary range")
	}
	if len(missing) > 0 {
		return &PublishError{Missing: missing}
	}
	return nil
}

// Create persists a new career. The caller passes an already-sanitized
// record; Create assigns identifiers, folds the title for sorting, applies
// defaults, and enforces publish preconditions when the record arrives with
// active status.
func (s *Store) Create(ctx context.Context, career models.Career) (models.Career, error) {
	now := time.Now().UTC()
	career.ID = primitive.NewObjectID()
	if career.CareerID == "" {
		career.CareerID = GenerateID()
	}
	career.JobTitleCI = text.Fold(career.JobTitle)
	if career.Status == "" {
		career.Status = models.StatusInactive
	}
	if career.ScreeningSetting == "" {
		career.ScreeningSetting = models.DefaultScreeningSetting
	}
	if career.Questions == nil {
		career.Questions = models.DefaultQuestionCategories()
	}
	career.CreatedAt = now
	career.UpdatedAt = nil

	if career.Status == models.StatusActive {
		if perr := checkPublishable(career); perr != nil {
			return models.Career{}, perr
		}
	}

	if _, err := s.c.InsertOne(ctx, career); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Career{}, ErrDuplicateID
		}
		return models.Career{}, err
	}
	return career, nil
}

// GetByCareerID loads a career by its external id, scoped to the org.
func (s *Store) GetByCareerID(ctx context.Context, orgID, careerID string) (models.Career, error) {
	var career models.Career
	err := s.c.FindOne(ctx, bson.M{"id": careerID, "org_id": orgID}).Decode(&career)
	if err == mongo.ErrNoDocuments {
		return models.Career{}, ErrNotFound
	}
	if err != nil {
		return models.Career{}, err
	}
	return career, nil
}

// CountByOrg counts careers for an org, optionally filtered by status.
func (s *Store) CountByOrg(ctx context.Context, orgID, status string) (int64, error) {
	filter := bson.M{"org_id": orgID}
	if status != "" {
		filter["status"] = status
	}
	return s.c.CountDocuments(ctx, filter)
}

// UpdateFields applies a field-level $set to one career. Keys are bson field
// names; callers own sanitization. updated_at is always refreshed. The org
// scope in the filter means a caller can never reach across tenants, and
// org_id itself is silently dropped from the set to keep it immutable.
func (s *Store) UpdateFields(ctx context.Context, orgID, careerID string, set bson.M, editedBy *models.UserSnapshot) error {
	if set == nil {
		set = bson.M{}
	}
	delete(set, "org_id")
	delete(set, "id")
	delete(set, "_id")
	delete(set, "created_at")

	if title, ok := set["job_title"].(string); ok {
		set["job_title_ci"] = text.Fold(title)
	}
	set["updated_at"] = time.Now().UTC()
	if editedBy != nil {
		set["last_edited_by"] = editedBy
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"id": careerID, "org_id": orgID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Publish flips a career to active after verifying it is complete.
func (s *Store) Publish(ctx context.Context, orgID, careerID string, editedBy *models.UserSnapshot) (models.Career, error) {
	career, err := s.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		return models.Career{}, err
	}
	if perr := checkPublishable(career); perr != nil {
		return models.Career{}, perr
	}
	if err := s.UpdateFields(ctx, orgID, careerID, bson.M{"status": models.StatusActive}, editedBy); err != nil {
		return models.Career{}, err
	}
	career.Status = models.StatusActive
	return career, nil
}

// Unpublish takes a career off the public board. Unpublishing an already
// inactive career is a no-op, not an error.
func (s *Store) Unpublish(ctx context.Context, orgID, careerID string, editedBy *models.UserSnapshot) error {
	return s.UpdateFields(ctx, orgID, careerID, bson.M{"status": models.StatusInactive}, editedBy)
}

// Delete removes a career. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, orgID, careerID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": careerID, "org_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
