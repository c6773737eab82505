// internal/app/features/churches/list.go
package churches

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/domain/models"
)

// ServeMine lists the caller's own church records, newest first.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "church list by owner")
	defer cancel()

	rows, err := h.Churches.ListByOwner(ctx, ident.ID)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	resp := churchListResponse{Status: "success", Results: len(rows)}
	resp.Data.Churches = rows
	httpjson.OK(w, resp)
}

// ServeOne returns one of the caller's church records.
func (h *Handler) ServeOne(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	httpjson.OK(w, churchResponse{Status: "success", Data: churchPayload{Church: ch}})
}

// loadOwned resolves {churchID}, loads the document and enforces that
// the caller owns it. On failure the response has already been written.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Church, bool) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return nil, false
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Resp.Fail(w, r, apperr.New(apperr.KindBadRequest, "invalid church id"))
		return nil, false
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "church lookup")
	defer cancel()

	ch, err := h.Churches.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Resp.Fail(w, r, apperr.NotFound("no church found with that id"))
			return nil, false
		}
		h.Resp.Fail(w, r, apperr.Internal(err))
		return nil, false
	}

	if ch.OwnerID != ident.ID {
		h.Resp.Fail(w, r, apperr.New(apperr.KindInsufficientPrivilege, "you do not have permission to perform this action"))
		return nil, false
	}
	return ch, true
}
