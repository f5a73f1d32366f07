// internal/domain/models/careerdraft.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Draft wizard step bounds.
const (
	DraftMinStep = 1
	DraftMaxStep = 4
)

// CareerDraft is the single autosave slot for the create flow. At most one
// draft exists per (org, user); repeated autosaves overwrite it in place.
// Drafts are deleted on successful publish or explicit discard, never by a
// TTL.
type CareerDraft struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrgID     string             `bson:"org_id" json:"orgID"`
	UserEmail string             `bson:"user_email" json:"userEmail"`

	// DraftData is an opaque snapshot of in-progress form state. The server
	// sanitizes string leaves but does not otherwise interpret the shape.
	DraftData bson.M `bson:"draft_data" json:"draftData"`

	CurrentStep int `bson:"current_step" json:"currentStep"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ClampStep normalizes an out-of-range wizard step cursor.
func ClampStep(step int) int {
	if step < DraftMinStep {
		return DraftMinStep
	}
	if step > DraftMaxStep {
		return DraftMaxStep
	}
	return step
}
