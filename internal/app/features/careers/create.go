// internal/app/features/careers/create.go
package careers

import (
	"context"
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/store/careers"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// HandleCreate handles POST /api/careers.
//
// The payload is validated and sanitized as a whole before any write. A
// status of "active" publishes immediately, which additionally requires the
// publish preconditions; on success the caller's wizard draft is discarded.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	raw, err := decodeBody(w, r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "create career: bad json", err, "Request body must be a JSON object.")
		return
	}

	orgID := resolveOrgID(u, stringValue(raw, "orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "create career: no org scope", nil, "An organization is required.")
		return
	}

	h.auditSuspicious(r, u, orgID, raw)

	result := sanitize.ValidateCareerInput(raw)
	if !result.OK {
		h.ErrLog.RenderValidation(w, r, result.Errors)
		return
	}

	career := result.Sanitized
	if career.Status == models.StatusActive {
		if missing := ReadyToPublish(career); len(missing) > 0 {
			h.ErrLog.RenderValidation(w, r, missing)
			return
		}
	}
	career.OrgID = orgID
	snap := models.UserSnapshot{Name: u.Name, Email: u.Email, Image: u.Image}
	career.CreatedBy = &snap

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Careers.Create(ctx, career)
	if err != nil {
		var pubErr *careerstore.PublishError
		if stderrors.As(err, &pubErr) {
			h.ErrLog.RenderValidation(w, r, pubErr.Missing)
			return
		}
		if stderrors.Is(err, careerstore.ErrDuplicateID) {
			h.ErrLog.LogBadRequest(w, r, "create career: duplicate id", err, "A career with this id already exists.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create career failed", err, "Unable to save the career.")
		return
	}

	h.Audit.CareerCreated(ctx, r, u.Email, orgID, created.CareerID, created.Status)

	// Publishing from the wizard completes the create flow, so the working
	// draft is no longer needed.
	if created.IsPublished() {
		if deleted, err := h.Drafts.Delete(ctx, orgID, u.Email); err != nil {
			h.Log.Warn("discard draft after publish failed",
				zap.String("org_id", orgID), zap.Error(err))
		} else if deleted {
			h.Audit.DraftDiscarded(ctx, r, u.Email, orgID, "published")
		}
	}

	writeJSON(w, http.StatusCreated, created)
}

func stringValue(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
