// internal/app/features/auth/avatar.go
package auth

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
	"github.com/gracegate/churchhub/internal/domain/models"
)

// HandleUpdateAvatar replaces the caller's avatar from a multipart form.
//
// Unlike the signup welcome email, the upload IS the primary action
// here: a storage failure is a hard 500, never silently swallowed.
func (h *Handler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	if err := r.ParseMultipartForm(limits.MaxAvatarFormSize); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse avatar form", err))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		var vs validate.Violations
		vs.Add("photo", "photo file is required")
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}
	defer file.Close()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "avatar upload")
	defer cancel()

	info, err := h.Uploads.Put(ctx, "avatars", header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	user, err := h.Users.UpdateAvatar(ctx, ident.ID, models.Avatar{StorageID: info.Key, URL: info.URL})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Resp.Fail(w, r, apperr.NotFound("user not found"))
			return
		}
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	httpjson.OK(w, userResponse{Status: "success", Data: userPayload{User: user}})
}
