// internal/app/features/churches/update.go
package churches

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	churchstore "github.com/gracegate/churchhub/internal/app/store/churches"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/htmlsanitize"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
	"github.com/gracegate/churchhub/internal/domain/models"
)

// updateChurchRequest is the partial-overlay body. Each supplied field
// replaces the stored field wholesale; absent fields are untouched.
type updateChurchRequest struct {
	Name         *string            `json:"name"`
	Location     *string            `json:"location"`
	Principal    *models.Principal  `json:"principal"`
	Securities   *models.Securities `json:"securities"`
	OldServices  *[]models.Service  `json:"oldServices"`
	LiveServices *[]models.Service  `json:"liveServices"`
	Gallery      *[]string          `json:"gallery"`
	Banner       *[]string          `json:"banner"`
	Songs        *[]models.Song     `json:"songs"`
	Logo         *string            `json:"logo"`
}

// HandleUpdate applies a partial overlay to one of the caller's records.
//
// The update contract is the creation contract with required fields
// relaxed: whatever IS supplied must still satisfy its constraint, and
// the post-update document is re-checked against the creation
// invariants before the write is accepted as final.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ch, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var req updateChurchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)).Decode(&req); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse church body", err))
		return
	}

	var vs validate.Violations
	set := bson.M{}
	var changed []string

	if req.Name != nil {
		vs.Required("name", *req.Name)
		set["name"] = htmlsanitize.StripTags(*req.Name)
		changed = append(changed, "name")
	}
	if req.Location != nil {
		vs.Required("location", *req.Location)
		set["location"] = htmlsanitize.StripTags(*req.Location)
		changed = append(changed, "location")
	}
	if req.Principal != nil {
		vs.Required("principal.name", req.Principal.Name)
		p := *req.Principal
		p.Name = htmlsanitize.StripTags(p.Name)
		p.Spouse = htmlsanitize.StripTags(p.Spouse)
		p.Description = htmlsanitize.Sanitize(p.Description)
		set["principal"] = p
		changed = append(changed, "principal")
	}
	if req.Securities != nil {
		validate.NonEmpty(&vs, "securities.deacons", req.Securities.Deacons)
		validate.NonEmpty(&vs, "securities.trustees", req.Securities.Trustees)
		sec := *req.Securities
		sanitizeOfficials(sec.Deacons)
		sanitizeOfficials(sec.Trustees)
		set["securities"] = sec
		changed = append(changed, "securities")
	}
	if req.OldServices != nil {
		validate.NonEmpty(&vs, "oldServices", *req.OldServices)
		set["old_services"] = *req.OldServices
		changed = append(changed, "oldServices")
	}
	if req.LiveServices != nil {
		validate.NonEmpty(&vs, "liveServices", *req.LiveServices)
		set["live_services"] = *req.LiveServices
		changed = append(changed, "liveServices")
	}
	if req.Gallery != nil {
		validate.NonEmpty(&vs, "gallery", *req.Gallery)
		set["gallery"] = *req.Gallery
		changed = append(changed, "gallery")
	}
	if req.Banner != nil {
		validate.NonEmpty(&vs, "banner", *req.Banner)
		set["banner"] = *req.Banner
		changed = append(changed, "banner")
	}
	if req.Songs != nil {
		validate.NonEmpty(&vs, "songs", *req.Songs)
		for i, song := range *req.Songs {
			vs.Required(fmt.Sprintf("songs[%d].title", i), song.Title)
			vs.URL(fmt.Sprintf("songs[%d].url", i), song.URL)
		}
		set["songs"] = *req.Songs
		changed = append(changed, "songs")
	}
	if req.Logo != nil {
		set["logo"] = *req.Logo
		changed = append(changed, "logo")
	}

	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "church update")
	defer cancel()

	updated, err := h.Churches.Update(ctx, ch.ID, set)
	if err != nil {
		switch err {
		case churchstore.ErrDuplicateName:
			h.Resp.Fail(w, r, apperr.Conflict("a church with this name already exists"))
		case churchstore.ErrInvariantViolated:
			h.Resp.Fail(w, r, apperr.New(apperr.KindBadRequest, "update violates church document invariants"))
		default:
			h.Resp.Fail(w, r, apperr.Internal(err))
		}
		return
	}

	if ident, ok := sysauth.CurrentUser(r); ok {
		h.AuditLog.ChurchUpdated(ctx, r, ident.ID, updated.ID, strings.Join(changed, ","))
	}

	httpjson.OK(w, churchResponse{Status: "success", Data: churchPayload{Church: updated}})
}
