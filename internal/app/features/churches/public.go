// internal/app/features/churches/public.go
package churches

import (
	"net/http"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/paging"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
)

// ServePublicList returns the unauthenticated church directory. Each
// entry carries id and name only; the full document never leaves the
// owner-scoped routes.
func (h *Handler) ServePublicList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "public church list")
	defer cancel()

	rows, err := h.Churches.ListPublic(ctx, p.Skip(), p.LimitPlusOne())
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}
	hasNext := paging.Trim(&rows, p)

	resp := publicListResponse{
		Status:  "success",
		Results: len(rows),
		Page:    p.Number,
		HasNext: hasNext,
	}
	resp.Data.Churches = rows
	httpjson.OK(w, resp)
}
