// internal/app/features/identity/routes.go
package identity

import "github.com/go-chi/chi/v5"

// Routes mounts the identity routes (typically under "/api/identity").
// Resolve is the entry point of a session, so it is deliberately outside
// RequireSignedIn.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleResolve)
	r.Post("/signout", h.HandleSignOut)

	return r
}
