// internal/app/features/auth/login.go
package auth

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin exchanges email+password for a bearer token.
//
// The failure message never distinguishes an unknown email from a wrong
// password; the audit trail records which it was.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)).Decode(&req); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse login body", err))
		return
	}

	var vs validate.Violations
	vs.Required("email", req.Email)
	vs.Required("password", req.Password)
	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	if allowed, reason := h.Limiter.Check(r, req.Email); !allowed {
		h.AuditLog.LoginFailedRateLimit(r.Context(), r, req.Email, "login")
		h.Resp.Fail(w, r, apperr.New(apperr.KindRateLimited, reason))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login user lookup")
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.AuditLog.LoginFailedUserNotFound(ctx, r, req.Email)
			h.Resp.Fail(w, r, apperr.New(apperr.KindInvalidCredential, "incorrect email or password"))
			return
		}
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.AuditLog.LoginFailedWrongPassword(ctx, r, user.ID, user.Email)
		h.Resp.Fail(w, r, apperr.New(apperr.KindInvalidCredential, "incorrect email or password"))
		return
	}

	h.Limiter.ResetEmail(user.Email)
	h.AuditLog.LoginSuccess(ctx, r, user.ID, user.Email)

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
