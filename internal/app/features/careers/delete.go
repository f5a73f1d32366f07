// internal/app/features/careers/delete.go
package careers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /api/careers/{id}. Removal is permanent, so
// the route is restricted to admin and owner roles. Deleting an id that does
// not exist in the caller's org reads as not found.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	careerID := chi.URLParam(r, "id")
	orgID := resolveOrgID(u, r.URL.Query().Get("orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "delete career: no org scope", nil, "An organization is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Careers.Delete(ctx, orgID, careerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete career failed", err, "Unable to delete the career.")
		return
	}
	if n == 0 {
		h.ErrLog.RenderNotFound(w, r, "Career not found.")
		return
	}

	h.Audit.CareerDeleted(ctx, r, u.Email, orgID, careerID)
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
