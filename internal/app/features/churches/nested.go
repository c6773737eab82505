// internal/app/features/churches/nested.go
package churches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	churchstore "github.com/gracegate/churchhub/internal/app/store/churches"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
)

// segmentFields maps the URL segment of a remove-element route to the
// stored sequence it addresses. The map is the closed set of removable
// sequences; any other segment is a malformed request, not a missing
// resource.
var segmentFields = map[string]churchstore.NestedField{
	"gallery":      churchstore.FieldGallery,
	"banner":       churchstore.FieldBanner,
	"song":         churchstore.FieldSongs,
	"past-service": churchstore.FieldOldServices,
	"live":         churchstore.FieldLiveServices,
	"deacon":       churchstore.FieldDeacons,
	"trustee":      churchstore.FieldTrustees,
}

// HandleRemoveElement deletes one element, by position, from an array
// field of the caller's church. Positions shift after removal, so
// repeating the same request removes whatever element has moved into
// that slot.
func (h *Handler) HandleRemoveElement(w http.ResponseWriter, r *http.Request) {
	// Malformed requests are rejected before the church lookup, so a
	// bad segment or index on a missing record still reads as a bad
	// request rather than a missing resource.
	field, ok := segmentFields[chi.URLParam(r, "segment")]
	if !ok {
		h.Resp.Fail(w, r, apperr.New(apperr.KindBadRequest, "unknown element collection"))
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		h.Resp.Fail(w, r, apperr.New(apperr.KindInvalidIndex, "index must be a non-negative integer"))
		return
	}

	ch, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "church element remove")
	defer cancel()

	if err := h.Churches.RemoveAt(ctx, ch.ID, field, index); err != nil {
		switch {
		case errors.Is(err, churchstore.ErrIndexOutOfRange):
			h.Resp.Fail(w, r, apperr.New(apperr.KindInvalidIndex, "index is outside the bounds of the collection"))
		case errors.Is(err, mongo.ErrNoDocuments):
			h.Resp.Fail(w, r, apperr.NotFound("no church found with that id"))
		default:
			h.Resp.Fail(w, r, apperr.Internal(err))
		}
		return
	}

	if ident, ok := sysauth.CurrentUser(r); ok {
		h.AuditLog.ChurchUpdated(ctx, r, ident.ID, ch.ID, string(field))
	}

	httpjson.NoContent(w)
}
