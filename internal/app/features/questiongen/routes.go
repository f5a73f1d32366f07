// internal/app/features/questiongen/routes.go
package questiongen

import (
	"github.com/go-chi/chi/v5"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
)

// Routes mounts the generation routes (typically under "/api/questions").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/generate", h.HandleGenerate)

	return r
}
