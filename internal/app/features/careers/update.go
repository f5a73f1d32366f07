// internal/app/features/careers/update.go
package careers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/launchpadjia/careerhub/internal/app/store/careers"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// HandleUpdate handles POST /api/careers/{id}: the full wizard save, which
// covers plain edits, publish, and unpublish depending on the status in the
// payload. The incoming fields are overlaid on the stored record and the
// merged result validated before anything is written, so a rejected save
// leaves the record untouched.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	careerID := chi.URLParam(r, "id")
	raw, err := decodeBody(w, r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "update career: bad json", err, "Request body must be a JSON object.")
		return
	}

	orgID := resolveOrgID(u, stringValue(raw, "orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "update career: no org scope", nil, "An organization is required.")
		return
	}

	h.auditSuspicious(r, u, orgID, raw)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Careers.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		if stderrors.Is(err, careerstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Career not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "load career for update failed", err, "Unable to save the career.")
		return
	}

	merged, result, ok := h.validateMerged(w, r, existing, raw)
	if !ok {
		return
	}

	targetStatus := existing.Status
	if _, present := raw["status"]; present {
		targetStatus = result.Sanitized.Status
	}
	if !models.CanTransitionStatus(existing.Status, targetStatus) {
		h.ErrLog.RenderValidation(w, r, []string{"status"})
		return
	}
	if targetStatus == models.StatusActive {
		if missing := ReadyToPublish(merged); len(missing) > 0 {
			h.ErrLog.RenderValidation(w, r, missing)
			return
		}
	}

	snap := models.UserSnapshot{Name: u.Name, Email: u.Email, Image: u.Image}

	set := careerSet(merged, raw)
	if len(set) == 0 && targetStatus != existing.Status {
		// Status-only save: route through the dedicated transitions so the
		// store's own publish gate runs too.
		if targetStatus == models.StatusActive {
			_, err = h.Careers.Publish(ctx, orgID, careerID, &snap)
		} else {
			err = h.Careers.Unpublish(ctx, orgID, careerID, &snap)
		}
	} else {
		set["status"] = targetStatus
		err = h.Careers.UpdateFields(ctx, orgID, careerID, set, &snap)
	}
	if err != nil {
		var pubErr *careerstore.PublishError
		if stderrors.As(err, &pubErr) {
			h.ErrLog.RenderValidation(w, r, pubErr.Missing)
			return
		}
		if stderrors.Is(err, careerstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Career not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "update career failed", err, "Unable to save the career.")
		return
	}

	h.Audit.CareerUpdated(ctx, r, u.Email, orgID, careerID, changedFieldNames(raw))
	switch {
	case targetStatus == models.StatusActive && existing.Status != models.StatusActive:
		h.Audit.CareerPublished(ctx, r, u.Email, orgID, careerID)
	case targetStatus == models.StatusInactive && existing.Status == models.StatusActive:
		h.Audit.CareerUnpublished(ctx, r, u.Email, orgID, careerID)
	}

	saved, err := h.Careers.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload career after update failed", err, "Unable to load the career.")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// HandleAutosave handles PATCH /api/careers/{id}/autosave: the edit-flow
// autosave. Only the fields present in the payload are written; the status
// never changes through this path.
func (h *Handler) HandleAutosave(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	careerID := chi.URLParam(r, "id")
	raw, err := decodeBody(w, r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "autosave career: bad json", err, "Request body must be a JSON object.")
		return
	}
	delete(raw, "status")

	orgID := resolveOrgID(u, stringValue(raw, "orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "autosave career: no org scope", nil, "An organization is required.")
		return
	}

	h.auditSuspicious(r, u, orgID, raw)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Careers.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		if stderrors.Is(err, careerstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Career not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "load career for autosave failed", err, "Unable to save changes.")
		return
	}

	merged, _, ok := h.validateMerged(w, r, existing, raw)
	if !ok {
		return
	}

	set := careerSet(merged, raw)
	if len(set) == 0 {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	snap := models.UserSnapshot{Name: u.Name, Email: u.Email, Image: u.Image}
	if err := h.Careers.UpdateFields(ctx, orgID, careerID, set, &snap); err != nil {
		if stderrors.Is(err, careerstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Career not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "autosave career failed", err, "Unable to save changes.")
		return
	}

	saved, err := h.Careers.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "reload career after autosave failed", err, "Unable to load the career.")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// validateMerged overlays the incoming fields on the stored record and runs
// the full validation pass over the merged document. It writes the error
// response itself and reports ok=false when validation failed.
func (h *Handler) validateMerged(w http.ResponseWriter, r *http.Request, existing models.Career, raw map[string]any) (models.Career, sanitize.CareerResult, bool) {
	base, err := careerAsMap(existing)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "encode career for merge failed", err, "Unable to save the career.")
		return models.Career{}, sanitize.CareerResult{}, false
	}
	for k, v := range raw {
		base[k] = v
	}

	result := sanitize.ValidateCareerInput(base)
	if !result.OK {
		h.ErrLog.RenderValidation(w, r, result.Errors)
		return models.Career{}, result, false
	}

	merged := result.Sanitized
	merged.ID = existing.ID
	merged.CareerID = existing.CareerID
	merged.OrgID = existing.OrgID
	merged.CreatedAt = existing.CreatedAt
	merged.CreatedBy = existing.CreatedBy
	if merged.Status == "" {
		merged.Status = existing.Status
	}
	return merged, result, true
}

// careerAsMap round-trips a Career through its JSON form so it can be
// overlaid with an incoming payload keyed by the same JSON names.
func careerAsMap(c models.Career) (map[string]any, error) {
	buf, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// careerSet builds the field-level $set for the keys actually present in the
// payload, taking the values from the merged, sanitized career. Identity and
// audit fields are never client-writable and the store strips them anyway.
func careerSet(c models.Career, raw map[string]any) bson.M {
	set := bson.M{}
	put := func(jsonKey, bsonKey string, value any) {
		if _, present := raw[jsonKey]; present {
			set[bsonKey] = value
		}
	}

	put("jobTitle", "job_title", c.JobTitle)
	put("description", "description", c.Description)
	put("workSetup", "work_setup", c.WorkSetup)
	put("workSetupRemarks", "work_setup_remarks", c.WorkSetupRemarks)
	put("employmentType", "employment_type", c.EmploymentType)
	put("country", "country", c.Country)
	put("province", "province", c.Province)
	put("location", "location", c.Location)
	put("salaryNegotiable", "salary_negotiable", c.SalaryNegotiable)
	put("requireVideo", "require_video", c.RequireVideo)
	put("preScreeningQuestions", "pre_screening_questions", c.PreScreeningQuestions)
	put("questions", "questions", c.Questions)
	put("teamMembers", "team_members", c.TeamMembers)
	put("secretPrompt", "secret_prompt", c.SecretPrompt)
	put("aiInterviewSecretPrompt", "ai_interview_secret_prompt", c.AIInterviewSecretPrompt)
	put("screeningSetting", "screening_setting", c.ScreeningSetting)
	put("aiInterviewScreening", "ai_interview_screening", c.AIInterviewScreening)
	if c.MinimumSalary != nil {
		put("minimumSalary", "minimum_salary", *c.MinimumSalary)
	}
	if c.MaximumSalary != nil {
		put("maximumSalary", "maximum_salary", *c.MaximumSalary)
	}
	if _, present := raw["currentStep"]; present {
		set["current_step"] = models.ClampStep(c.CurrentStep)
	}
	return set
}

// changedFieldNames summarizes which payload keys a save touched, for the
// audit trail.
func changedFieldNames(raw map[string]any) string {
	names := ""
	for _, k := range sortedKeys(raw) {
		if names != "" {
			names += ","
		}
		names += k
	}
	return names
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
