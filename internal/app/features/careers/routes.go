// internal/app/features/careers/routes.go
package careers

import (
	"github.com/go-chi/chi/v5"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// Routes mounts the career lifecycle routes (typically under "/api/careers").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Post("/{id}", h.HandleUpdate)
	r.Patch("/{id}/autosave", h.HandleAutosave)

	// Deletion is permanent, so recruiters don't get it.
	r.With(auth.RequireRole(models.MemberRoleAdmin, models.MemberRoleOwner)).
		Delete("/{id}", h.HandleDelete)

	return r
}

// DraftRoutes mounts the wizard draft routes (typically under "/api/drafts").
func DraftRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Put("/", h.HandlePutDraft)
	r.Get("/", h.ServeGetDraft)
	r.Delete("/", h.HandleDeleteDraft)

	return r
}
