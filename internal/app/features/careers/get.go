// internal/app/features/careers/get.go
package careers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/launchpadjia/careerhub/internal/app/store/careers"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
)

// ServeGet handles GET /api/careers/{id}. Lookups are always org-scoped, so
// a career belonging to another organization reads as not found.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	careerID := chi.URLParam(r, "id")
	orgID := resolveOrgID(u, r.URL.Query().Get("orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "get career: no org scope", nil, "An organization is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	career, err := h.Careers.GetByCareerID(ctx, orgID, careerID)
	if err != nil {
		if stderrors.Is(err, careerstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Career not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "get career failed", err, "Unable to load the career.")
		return
	}

	writeJSON(w, http.StatusOK, career)
}
