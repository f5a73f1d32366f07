// internal/domain/models/career.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Career statuses. A career is either a working/unpublished record
// ("inactive") or visible on the public job board ("active"). There is no
// implicit promotion: only an explicit publish action moves a record to
// StatusActive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// IsValidStatus reports whether s is one of the two career statuses.
func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// CanTransitionStatus is the closed transition table for career statuses.
// Both directions are allowed (publish and unpublish) and re-saving with the
// same status is a no-op transition.
func CanTransitionStatus(from, to string) bool {
	return IsValidStatus(from) && IsValidStatus(to)
}

// Work arrangement options shown in the posting wizard.
var WorkSetups = []string{"Fully Remote", "Onsite", "Hybrid"}

// Employment type options.
var EmploymentTypes = []string{"Full-Time", "Part-Time"}

// Screening thresholds control how aggressively the external fit assessment
// auto-advances candidates.
var ScreeningSettings = []string{
	"Good Fit and above",
	"Only Strong Fit",
	"No Automatic Promotion",
}

// DefaultScreeningSetting is applied when an organization has not chosen one.
const DefaultScreeningSetting = "Good Fit and above"

// Team access roles on a single career.
const (
	TeamRoleOwner       = "Job Owner"
	TeamRoleContributor = "Contributor"
	TeamRoleReviewer    = "Reviewer"
)

// TeamRoles lists the valid team access roles.
var TeamRoles = []string{TeamRoleOwner, TeamRoleContributor, TeamRoleReviewer}

// Pre-screening question types.
const (
	QuestionShortAnswer = "short-answer"
	QuestionLongAnswer  = "long-answer"
	QuestionDropdown    = "dropdown"
	QuestionCheckboxes  = "checkboxes"
	QuestionRange       = "range"
)

// QuestionTypes lists the valid pre-screening question types.
var QuestionTypes = []string{
	QuestionShortAnswer,
	QuestionLongAnswer,
	QuestionDropdown,
	QuestionCheckboxes,
	QuestionRange,
}

// UserSnapshot is the identity captured on a write. It is a copy, not a live
// reference: later profile edits do not rewrite audit fields on careers.
type UserSnapshot struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// PreScreeningQuestion is one applicant-facing question with type-specific
// option or range data.
type PreScreeningQuestion struct {
	Question string   `bson:"question" json:"question"`
	Type     string   `bson:"type" json:"type"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
	RangeMin *float64 `bson:"range_min,omitempty" json:"rangeMin,omitempty"`
	RangeMax *float64 `bson:"range_max,omitempty" json:"rangeMax,omitempty"`
}

// QuestionCategory groups interview questions under a label, optionally with
// a count of how many to actually ask.
type QuestionCategory struct {
	ID                 int      `bson:"id" json:"id"`
	Category           string   `bson:"category" json:"category"`
	QuestionCountToAsk *int     `bson:"question_count_to_ask,omitempty" json:"questionCountToAsk,omitempty"`
	Questions          []string `bson:"questions" json:"questions"`
}

// TeamMember is one team-access entry on a career.
type TeamMember struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Role  string `bson:"role" json:"role"`
}

// Career is a job posting owned by an organization.
//
// Two identifiers resolve to the same record: ID is Mongo's ObjectID assigned
// at first persistence; CareerID is the generated opaque string used by
// lookup routes and autosave continuity. OrgID is immutable once set.
type Career struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CareerID  string             `bson:"id" json:"id"`
	OrgID     string             `bson:"org_id" json:"orgID"`

	JobTitle   string `bson:"job_title" json:"jobTitle"`
	JobTitleCI string `bson:"job_title_ci" json:"-"` // lowercase, diacritics-stripped

	Description string `bson:"description" json:"description"` // sanitized HTML subset

	WorkSetup        string `bson:"work_setup" json:"workSetup"`
	WorkSetupRemarks string `bson:"work_setup_remarks,omitempty" json:"workSetupRemarks,omitempty"`
	EmploymentType   string `bson:"employment_type,omitempty" json:"employmentType,omitempty"`

	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	Province string `bson:"province,omitempty" json:"province,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"` // city

	SalaryNegotiable bool     `bson:"salary_negotiable" json:"salaryNegotiable"`
	MinimumSalary    *float64 `bson:"minimum_salary,omitempty" json:"minimumSalary,omitempty"`
	MaximumSalary    *float64 `bson:"maximum_salary,omitempty" json:"maximumSalary,omitempty"`

	PreScreeningQuestions []PreScreeningQuestion `bson:"pre_screening_questions,omitempty" json:"preScreeningQuestions,omitempty"`
	Questions             []QuestionCategory     `bson:"questions,omitempty" json:"questions,omitempty"`
	TeamMembers           []TeamMember           `bson:"team_members,omitempty" json:"teamMembers,omitempty"`

	// Organization-authored prompts that bias the external evaluation
	// service. Never shown to candidates.
	SecretPrompt            string `bson:"secret_prompt,omitempty" json:"secretPrompt,omitempty"`
	AIInterviewSecretPrompt string `bson:"ai_interview_secret_prompt,omitempty" json:"aiInterviewSecretPrompt,omitempty"`

	ScreeningSetting     string `bson:"screening_setting,omitempty" json:"screeningSetting,omitempty"`
	AIInterviewScreening string `bson:"ai_interview_screening,omitempty" json:"aiInterviewScreening,omitempty"`

	RequireVideo bool `bson:"require_video" json:"requireVideo"`

	Status      string `bson:"status" json:"status"`
	CurrentStep int    `bson:"current_step,omitempty" json:"currentStep,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`

	CreatedBy    *UserSnapshot `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	LastEditedBy *UserSnapshot `bson:"last_edited_by,omitempty" json:"lastEditedBy,omitempty"`
}

// IsPublished reports whether the career is visible on the public board.
func (c *Career) IsPublished() bool {
	return c.Status == StatusActive
}

// TotalQuestions counts interview questions across all categories.
func (c *Career) TotalQuestions() int {
	total := 0
	for _, cat := range c.Questions {
		total += len(cat.Questions)
	}
	return total
}

// DefaultQuestionCategories returns the five empty categories the wizard
// starts from.
func DefaultQuestionCategories() []QuestionCategory {
	labels := []string{
		"CV Validation / Experience",
		"Technical",
		"Behavioral",
		"Analytical",
		"Others",
	}
	cats := make([]QuestionCategory, 0, len(labels))
	for i, label := range labels {
		cats = append(cats, QuestionCategory{ID: i + 1, Category: label, Questions: []string{}})
	}
	return cats
}
