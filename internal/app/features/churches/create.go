// internal/app/features/churches/create.go
package churches

import (
	"encoding/json"
	"fmt"
	"net/http"

	churchstore "github.com/gracegate/churchhub/internal/app/store/churches"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/htmlsanitize"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/domain/models"
)

// HandleCreate registers a new church record owned by the caller.
//
// The full contract applies: name present, every array field non-empty,
// song URLs well-formed. Violations are reported exhaustively and
// nothing is persisted.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	var ch models.Church
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)).Decode(&ch); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse church body", err))
		return
	}

	sanitizeChurch(&ch)

	vs := churchstore.CheckInvariants(&ch)
	vs.Required("location", ch.Location)
	vs.Required("principal.name", ch.Principal.Name)
	for i, song := range ch.Songs {
		vs.Required(fmt.Sprintf("songs[%d].title", i), song.Title)
		vs.URL(fmt.Sprintf("songs[%d].url", i), song.URL)
	}
	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "church create")
	defer cancel()

	created, err := h.Churches.Create(ctx, ch, ident.ID)
	if err != nil {
		if err == churchstore.ErrDuplicateName {
			h.Resp.Fail(w, r, apperr.Conflict("a church with this name already exists"))
			return
		}
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	h.AuditLog.ChurchCreated(ctx, r, ident.ID, created.ID, created.Name)

	httpjson.Created(w, churchResponse{Status: "success", Data: churchPayload{Church: &created}})
}

// sanitizeChurch cleans the free-text fields that may carry markup.
// Names and titles are reduced to plain text; descriptions keep benign
// formatting.
func sanitizeChurch(ch *models.Church) {
	ch.Name = htmlsanitize.StripTags(ch.Name)
	ch.Location = htmlsanitize.StripTags(ch.Location)
	ch.Principal.Name = htmlsanitize.StripTags(ch.Principal.Name)
	ch.Principal.Spouse = htmlsanitize.StripTags(ch.Principal.Spouse)
	ch.Principal.Description = htmlsanitize.Sanitize(ch.Principal.Description)

	sanitizeOfficials(ch.Securities.Deacons)
	sanitizeOfficials(ch.Securities.Trustees)
}

func sanitizeOfficials(officials []models.Official) {
	for i := range officials {
		officials[i].Names = htmlsanitize.StripTags(officials[i].Names)
		officials[i].Description = htmlsanitize.Sanitize(officials[i].Description)
	}
}
