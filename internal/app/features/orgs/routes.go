// internal/app/features/orgs/routes.go
package orgs

import (
	"github.com/go-chi/chi/v5"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
)

// Routes mounts the organization routes (typically under "/api/orgs").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/details", h.HandleDetails)
	r.Post("/members", h.HandleMembers)

	return r
}
