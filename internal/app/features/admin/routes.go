// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/authz"
)

// Routes mounts the administrator workflows. Every route requires an
// authenticated caller whose current record carries the elevation flag.
func Routes(h *Handler, mw *sysauth.Middleware, gate *authz.AdminGate) chi.Router {
	r := chi.NewRouter()
	r.Use(mw.Require)
	r.Use(gate.RequireAdmin)

	r.Get("/users/pending", h.ServePendingUsers)
	r.Patch("/users/{userID}/approve", h.HandleApproveUser)

	return r
}
