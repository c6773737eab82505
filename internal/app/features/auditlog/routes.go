// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/authz"
)

// Routes mounts the audit trail listing. Like the rest of the admin
// surface, elevation is re-checked against the database per request.
func Routes(h *Handler, mw *sysauth.Middleware, gate *authz.AdminGate) chi.Router {
	r := chi.NewRouter()
	r.Use(mw.Require)
	r.Use(gate.RequireAdmin)

	r.Get("/", h.ServeList)

	return r
}
