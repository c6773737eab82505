// internal/app/features/admin/pending.go
package admin

import (
	"net/http"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/domain/models"
)

type pendingListResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    struct {
		Users []models.User `json:"users"`
	} `json:"data"`
}

// ServePendingUsers lists accounts still awaiting approval, oldest first.
func (h *Handler) ServePendingUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "pending user list")
	defer cancel()

	users, err := h.Users.ListPending(ctx)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	resp := pendingListResponse{Status: "success", Results: len(users)}
	resp.Data.Users = users
	httpjson.OK(w, resp)
}
