// internal/app/features/careers/drafts.go
package careers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// draftKey resolves which (org, user) a draft request addresses. Org members
// operate on their own draft; platform admins may address any via query or
// body values.
func draftKey(u *auth.SessionUser, orgID, userEmail string) (string, string) {
	if u.OrgID != "" {
		orgID = u.OrgID
	}
	if userEmail == "" || u.OrgID != "" {
		userEmail = u.Email
	}
	return orgID, userEmail
}

// HandlePutDraft handles PUT /api/drafts: the create-flow autosave. The
// draft snapshot is stored as-is apart from string sanitization; it is not
// validated, since partial wizard state is the whole point of a draft.
func (h *Handler) HandlePutDraft(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	raw, err := decodeBody(w, r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "save draft: bad json", err, "Request body must be a JSON object.")
		return
	}

	orgID, userEmail := draftKey(u, stringValue(raw, "orgID"), stringValue(raw, "userEmail"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "save draft: no org scope", nil, "An organization is required.")
		return
	}

	data, _ := raw["draftData"].(map[string]any)
	if data == nil {
		h.ErrLog.LogBadRequest(w, r, "save draft: missing draftData", nil, "draftData is required.")
		return
	}

	h.auditSuspicious(r, u, orgID, data)
	cleaned := sanitize.Document(bson.M(data), sanitize.Basic)

	step := models.DraftMinStep
	if n, ok := raw["currentStep"].(float64); ok {
		step = models.ClampStep(int(n))
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	draft, err := h.Drafts.Upsert(ctx, orgID, userEmail, cleaned, step)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save draft failed", err, "Unable to save the draft.")
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{Draft: &draft})
}

// ServeGetDraft handles GET /api/drafts. A missing draft is a normal empty
// result: the body carries a null draft and the status stays 200.
func (h *Handler) ServeGetDraft(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	orgID, userEmail := draftKey(u, r.URL.Query().Get("orgID"), r.URL.Query().Get("userEmail"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "get draft: no org scope", nil, "An organization is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	draft, err := h.Drafts.Get(ctx, orgID, userEmail)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get draft failed", err, "Unable to load the draft.")
		return
	}

	writeJSON(w, http.StatusOK, draftResponse{Draft: draft})
}

// HandleDeleteDraft handles DELETE /api/drafts. Deleting a draft that does
// not exist succeeds; discard is idempotent.
func (h *Handler) HandleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	orgID, userEmail := draftKey(u, r.URL.Query().Get("orgID"), r.URL.Query().Get("userEmail"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "delete draft: no org scope", nil, "An organization is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Drafts.Delete(ctx, orgID, userEmail)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete draft failed", err, "Unable to discard the draft.")
		return
	}
	if deleted {
		h.Audit.DraftDiscarded(ctx, r, u.Email, orgID, "discarded")
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
