// internal/app/system/sanitize/career.go
package sanitize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/launchpadjia/careerhub/internal/app/system/inputval"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// CareerResult is the outcome of validating and sanitizing a raw career
// payload. Errors accumulates every violation so callers can surface all of
// them at once; Sanitized is only meaningful when OK is true.
type CareerResult struct {
	OK        bool
	Errors    []string
	Sanitized models.Career
}

// ValidateCareerInput validates and deep-sanitizes a raw career payload.
//
// String content is sanitized per field: strict for titles and locations,
// basic for remarks and question text, rich for the description. Numeric
// salary fields are coerced and range-checked, booleans coerced, and enum
// fields checked against their closed sets. Malformed input never panics:
// it is either normalized or reported through the error list.
//
// Validation runs to completion before any caller touches persistence, so a
// failed result implies no partial write happened.
func ValidateCareerInput(raw map[string]any) CareerResult {
	var errs []string
	var c models.Career

	// Required string fields.
	if title, ok := stringField(raw, "jobTitle"); !ok {
		errs = append(errs, "Job title is required and must be a string")
	} else {
		c.JobTitle = Text(title, Strict)
		if len(c.JobTitle) < 3 {
			errs = append(errs, "Job title must be at least 3 characters")
		}
		if len(c.JobTitle) > 200 {
			errs = append(errs, "Job title must be less than 200 characters")
		}
	}

	if desc, ok := stringField(raw, "description"); !ok {
		errs = append(errs, "Description is required and must be a string")
	} else {
		c.Description = Text(desc, Rich)
		if len(c.Description) < 10 {
			errs = append(errs, "Description must be at least 10 characters")
		}
	}

	if loc, ok := stringField(raw, "location"); !ok {
		errs = append(errs, "Location is required")
	} else {
		c.Location = Text(loc, Strict)
	}

	if setup, ok := stringField(raw, "workSetup"); !ok {
		errs = append(errs, "Work setup is required")
	} else {
		c.WorkSetup = Text(setup, Strict)
		if !isOneOf(c.WorkSetup, models.WorkSetups) {
			errs = append(errs, "Work setup is invalid")
		}
	}

	// Optional string fields.
	c.WorkSetupRemarks = optionalText(raw, "workSetupRemarks", Basic)
	c.Country = optionalText(raw, "country", Strict)
	c.Province = optionalText(raw, "province", Strict)
	if et := optionalText(raw, "employmentType", Strict); et != "" {
		if !isOneOf(et, models.EmploymentTypes) {
			errs = append(errs, "Employment type is invalid")
		} else {
			c.EmploymentType = et
		}
	}
	c.SecretPrompt = optionalText(raw, "secretPrompt", Basic)
	c.AIInterviewSecretPrompt = optionalText(raw, "aiInterviewSecretPrompt", Basic)

	// Enum fields.
	if setting := optionalText(raw, "screeningSetting", Strict); setting != "" {
		if !isOneOf(setting, models.ScreeningSettings) {
			errs = append(errs, "Screening setting is invalid")
		} else {
			c.ScreeningSetting = setting
		}
	}
	if setting := optionalText(raw, "aiInterviewScreening", Strict); setting != "" {
		if !isOneOf(setting, models.ScreeningSettings) {
			errs = append(errs, "Interview screening setting is invalid")
		} else {
			c.AIInterviewScreening = setting
		}
	}
	if status := optionalText(raw, "status", Strict); status != "" {
		if !models.IsValidStatus(status) {
			errs = append(errs, "Status must be 'active' or 'inactive'")
		} else {
			c.Status = status
		}
	}

	// Interview question categories.
	if qs, present := raw["questions"]; present && qs != nil {
		cats, err := coerceQuestionCategories(qs)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			c.Questions = cats
		}
	}

	// Pre-screening questions.
	if qs, present := raw["preScreeningQuestions"]; present && qs != nil {
		pre, preErrs := coercePreScreening(qs)
		errs = append(errs, preErrs...)
		c.PreScreeningQuestions = pre
	}

	// Team access entries.
	if tm, present := raw["teamMembers"]; present && tm != nil {
		members, tmErrs := coerceTeamMembers(tm)
		errs = append(errs, tmErrs...)
		c.TeamMembers = members
	}

	// Numeric salary fields.
	if v, present := raw["minimumSalary"]; present && v != nil {
		if n, ok := coerceNumber(v); !ok || n < 0 {
			errs = append(errs, "Minimum salary must be a positive number")
		} else {
			c.MinimumSalary = &n
		}
	}
	if v, present := raw["maximumSalary"]; present && v != nil {
		if n, ok := coerceNumber(v); !ok || n < 0 {
			errs = append(errs, "Maximum salary must be a positive number")
		} else {
			c.MaximumSalary = &n
		}
	}
	if c.MinimumSalary != nil && c.MaximumSalary != nil && *c.MinimumSalary > *c.MaximumSalary {
		errs = append(errs, "Minimum salary cannot be greater than maximum salary")
	}

	// Boolean flags: invalid values normalize to false, never error.
	c.SalaryNegotiable = coerceBool(raw["salaryNegotiable"])
	c.RequireVideo = coerceBool(raw["requireVideo"])

	// Pass-through identity and scoping fields.
	c.OrgID = optionalText(raw, "orgID", Strict)
	if step, ok := coerceNumber(raw["currentStep"]); ok {
		c.CurrentStep = models.ClampStep(int(step))
	}
	if by, ok := raw["createdBy"].(map[string]any); ok {
		c.CreatedBy = coerceSnapshot(by)
	}
	if by, ok := raw["lastEditedBy"].(map[string]any); ok {
		c.LastEditedBy = coerceSnapshot(by)
	}

	return CareerResult{OK: len(errs) == 0, Errors: errs, Sanitized: c}
}

/* ------------------------------ coercion helpers ------------------------- */

func stringField(raw map[string]any, key string) (string, bool) {
	v, present := raw[key]
	if !present || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func optionalText(raw map[string]any, key string, p Policy) string {
	s, ok := raw[key].(string)
	if !ok {
		return ""
	}
	return Text(s, p)
}

func isOneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// coerceNumber accepts the numeric shapes JSON decoding can produce plus
// numeric strings from form fields.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func coerceSnapshot(m map[string]any) *models.UserSnapshot {
	snap := models.UserSnapshot{
		Name:  Text(stringOr(m, "name"), Strict),
		Email: strings.TrimSpace(stringOr(m, "email")),
		Image: strings.TrimSpace(stringOr(m, "image")),
	}
	if snap.Email == "" {
		return nil
	}
	return &snap
}

func stringOr(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func coerceQuestionCategories(v any) ([]models.QuestionCategory, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, fmt.Errorf("Questions must be an array")
	}
	cats := make([]models.QuestionCategory, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		cat := models.QuestionCategory{
			Category:  Text(stringOr(m, "category"), Strict),
			Questions: []string{},
		}
		if id, ok := coerceNumber(m["id"]); ok {
			cat.ID = int(id)
		}
		if count, ok := coerceNumber(m["questionCountToAsk"]); ok {
			n := int(count)
			cat.QuestionCountToAsk = &n
		}
		if qs, ok := asSlice(m["questions"]); ok {
			for _, q := range qs {
				if s, ok := q.(string); ok {
					cat.Questions = append(cat.Questions, Text(s, Basic))
				}
			}
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func coercePreScreening(v any) ([]models.PreScreeningQuestion, []string) {
	items, ok := asSlice(v)
	if !ok {
		return nil, []string{"Pre-screening questions must be an array"}
	}
	var errs []string
	out := make([]models.PreScreeningQuestion, 0, len(items))
	for i, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		q := models.PreScreeningQuestion{
			Question: Text(stringOr(m, "question"), Basic),
			Type:     strings.TrimSpace(stringOr(m, "type")),
		}
		if q.Type != "" && !isOneOf(q.Type, models.QuestionTypes) {
			errs = append(errs, fmt.Sprintf("Pre-screening question %d has an invalid type", i+1))
			continue
		}
		if opts, ok := asSlice(m["options"]); ok {
			for _, o := range opts {
				if s, ok := o.(string); ok {
					q.Options = append(q.Options, Text(s, Strict))
				}
			}
		}
		if lo, ok := coerceNumber(m["rangeMin"]); ok {
			q.RangeMin = &lo
		}
		if hi, ok := coerceNumber(m["rangeMax"]); ok {
			q.RangeMax = &hi
		}
		out = append(out, q)
	}
	return out, errs
}

func coerceTeamMembers(v any) ([]models.TeamMember, []string) {
	items, ok := asSlice(v)
	if !ok {
		return nil, []string{"Team members must be an array"}
	}
	var errs []string
	out := make([]models.TeamMember, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		member := models.TeamMember{
			Name:  Text(stringOr(m, "name"), Strict),
			Email: strings.TrimSpace(stringOr(m, "email")),
			Image: strings.TrimSpace(stringOr(m, "image")),
			Role:  strings.TrimSpace(stringOr(m, "role")),
		}
		if member.Email != "" && !inputval.IsValidEmail(member.Email) {
			errs = append(errs, fmt.Sprintf("Team member email %q is invalid", member.Email))
			continue
		}
		if member.Role != "" && !isOneOf(member.Role, models.TeamRoles) {
			errs = append(errs, fmt.Sprintf("Team member role %q is invalid", member.Role))
			continue
		}
		out = append(out, member)
	}
	return out, errs
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	default:
		return nil, false
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
