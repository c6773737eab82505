// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
)

// Routes mounts all account routes under the path where the caller mounts it.
// Typically: r.Mount("/auth", auth.Routes(handler, mw))
func Routes(h *Handler, mw *sysauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(mw.Require)

		pr.Get("/me", h.ServeMe)
		pr.Patch("/updateMe", h.HandleUpdateMe)
		pr.Patch("/update-password", h.HandleUpdatePassword)
		pr.Patch("/update-avatar", h.HandleUpdateAvatar)
	})

	return r
}
