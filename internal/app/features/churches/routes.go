// internal/app/features/churches/routes.go
package churches

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
)

// Routes mounts the owner-scoped church routes. Typically:
// r.Mount("/dashboard/churches", churches.Routes(handler, mw))
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(mw.Require)

		pr.Post("/", h.HandleCreate)
		pr.Get("/", h.ServeMine)
		pr.Get("/{churchID}", h.ServeOne)
		pr.Patch("/{churchID}", h.HandleUpdate)
		pr.Delete("/{churchID}", h.HandleDelete)

		// Element removal on the nested sequences. The segment-to-field
		// mapping is a fixed table; anything outside it is rejected.
		pr.Delete("/{churchID}/{segment}/{index}", h.HandleRemoveElement)
	})

	return r
}

// PublicRoutes mounts the unauthenticated directory listing. Typically:
// r.Mount("/dashboard/public/churches", churches.PublicRoutes(handler))
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePublicList)
	return r
}
