// internal/app/features/auth/profile.go
package auth

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
)

// ServeMe returns the caller's full account record.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "me lookup")
	defer cancel()

	user, err := h.Users.GetByID(ctx, ident.ID)
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

type updateMeRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           *string `json:"email"`
	ChurchSelection *string `json:"churchSelection"`

	// Present only to reject password changes on this route.
	Password        *string `json:"password"`
	PasswordConfirm *string `json:"passwordConfirm"`
}

// HandleUpdateMe applies a partial profile overlay for the caller.
// Password changes are rejected here; they go through update-password.
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	var req updateMeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)).Decode(&req); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse profile body", err))
		return
	}

	if req.Password != nil || req.PasswordConfirm != nil {
		h.Resp.Fail(w, r, apperr.New(apperr.KindBadRequest,
			"this route is not for password updates, use /auth/update-password"))
		return
	}

	var vs validate.Violations
	if req.Email != nil {
		vs.Required("email", *req.Email)
		vs.Email("email", *req.Email)
	}
	if req.FirstName != nil {
		vs.Required("firstName", *req.FirstName)
	}
	if req.LastName != nil {
		vs.Required("lastName", *req.LastName)
	}
	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "profile update")
	defer cancel()

	user, err := h.Users.UpdateProfile(ctx, ident.ID, userstore.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		ChurchSelection: req.ChurchSelection,
	})
	if err != nil {
		switch err {
		case userstore.ErrDuplicateEmail:
			h.Resp.Fail(w, r, apperr.Conflict("a user with this email already exists"))
		case mongo.ErrNoDocuments:
			h.Resp.Fail(w, r, apperr.NotFound("user not found"))
		default:
			h.Resp.Fail(w, r, apperr.Internal(err))
		}
		return
	}

	httpjson.OK(w, userResponse{Status: "success", Data: userPayload{User: user}})
}
