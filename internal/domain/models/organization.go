// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a recruiting tenant. Careers and members are scoped to one
// organization; the org's plan controls posting limits. OrgID is the external
// identifier issued by the host platform and is what career and draft
// documents reference.
type Organization struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrgID  string             `bson:"id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	LogoURL string `bson:"logo_url,omitempty" json:"logoURL,omitempty"`
	Status  string `bson:"status" json:"status"`

	// PlanID references the organization_plans collection. Stored as a hex
	// string because older records predate ObjectID plan references.
	PlanID string `bson:"plan_id,omitempty" json:"planID,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// OrganizationPlan is a billing tier joined onto an organization at read time.
type OrganizationPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name          string             `bson:"name" json:"name"`
	MaxActiveJobs int                `bson:"max_active_jobs" json:"maxActiveJobs"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// OrganizationDetails is the read model returned to the dashboard: the org
// document with its plan resolved.
type OrganizationDetails struct {
	Organization `bson:",inline"`
	Plan         *OrganizationPlan `bson:"plan,omitempty" json:"plan,omitempty"`
}
