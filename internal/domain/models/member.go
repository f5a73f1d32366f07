// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member account roles. Admins are platform operators and carry no OrgID;
// recruiters and owners belong to exactly one organization.
const (
	MemberRoleAdmin     = "admin"
	MemberRoleOwner     = "owner"
	MemberRoleRecruiter = "recruiter"
)

// Member is a signed-in account. Identity (name, email, image) arrives
// already resolved by the upstream auth provider; this record adds the role
// and organization binding.
type Member struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	EmailCI string             `bson:"email_ci" json:"-"` // folded for lookups
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`

	Role  string `bson:"role" json:"role"`
	OrgID string `bson:"org_id,omitempty" json:"orgID,omitempty"`

	LastSeen  time.Time `bson:"last_seen" json:"lastSeen"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
