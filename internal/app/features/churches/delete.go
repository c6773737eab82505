// internal/app/features/churches/delete.go
package churches

import (
	"net/http"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
)

// HandleDelete removes one of the caller's church records.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "church delete")
	defer cancel()

	deleted, err := h.Churches.Delete(ctx, ch.ID)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}
	if deleted == 0 {
		h.Resp.Fail(w, r, apperr.NotFound("no church found with that id"))
		return
	}

	if ident, ok := sysauth.CurrentUser(r); ok {
		h.AuditLog.ChurchDeleted(ctx, r, ident.ID, ch.ID, ch.Name)
	}

	httpjson.NoContent(w)
}
