// internal/app/features/auth/password.go
package auth

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	sysauth "github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
)

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
}

// HandleUpdatePassword rotates the caller's credential after verifying
// the current one, and re-issues the bearer token.
func (h *Handler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	ident, ok := sysauth.CurrentUser(r)
	if !ok {
		h.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
		return
	}

	var req updatePasswordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)).Decode(&req); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse password body", err))
		return
	}

	var vs validate.Violations
	vs.Required("currentPassword", req.CurrentPassword)
	vs.Required("password", req.Password)
	vs.MinLen("password", req.Password, 8)
	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "password update")
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

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		h.Resp.Fail(w, r, apperr.New(apperr.KindInvalidCredential, "your current password is wrong"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}
	if err := h.Users.UpdatePassword(ctx, ident.ID, string(hash)); err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	h.AuditLog.PasswordChanged(ctx, r, user.ID)

	token, err := h.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	httpjson.OK(w, tokenResponse{
		Status: "success",
		Token:  token,
		Data:   userPayload{User: user},
	})
}
