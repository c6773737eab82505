// internal/app/features/auth/signup.go
package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/gracegate/churchhub/internal/app/store/users"
	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/limits"
	"github.com/gracegate/churchhub/internal/app/system/mailer"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
	"github.com/gracegate/churchhub/internal/app/system/validate"
	"github.com/gracegate/churchhub/internal/domain/models"
)

// HandleSignup registers a new account from a multipart form.
//
// Validation is exhaustive: every violated field is reported in one
// response and nothing is persisted. The optional "photo" part becomes
// the account avatar; a storage failure there aborts the signup. The
// welcome email is best-effort and never fails the request.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(limits.MaxAvatarFormSize); err != nil {
		h.Resp.Fail(w, r, apperr.Wrap(apperr.KindBadRequest, "could not parse signup form", err))
		return
	}

	firstName := r.FormValue("firstName")
	lastName := r.FormValue("lastName")
	email := r.FormValue("email")
	password := r.FormValue("password")
	role := r.FormValue("role")
	churchSelection := r.FormValue("churchSelection")

	var vs validate.Violations
	vs.Required("firstName", firstName)
	vs.Required("lastName", lastName)
	vs.Required("email", email)
	vs.Email("email", email)
	vs.Required("password", password)
	vs.MinLen("password", password, 8)
	vs.OneOf("role", role, models.RoleStandard, models.RolePastor, models.RoleIT)

	// Cross-field rule, evaluated after the per-field checks: pastor and
	// IT accounts must name their church. A whitespace-only value counts
	// as absent.
	if (role == models.RolePastor || role == models.RoleIT) && strings.TrimSpace(churchSelection) == "" {
		vs.Add("churchSelection", "churchSelection is required for pastor and IT accounts")
	}

	if !vs.OK() {
		h.Resp.Fail(w, r, apperr.Validation(vs))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	user := models.User{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		ChurchSelection: churchSelection,
	}

	// Optional avatar. Storage failure aborts: the client asked for the
	// photo to be part of the account.
	if file, header, ferr := r.FormFile("photo"); ferr == nil {
		defer file.Close()

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "signup avatar upload")
		info, uerr := h.Uploads.Put(ctx, "avatars", header.Filename, file, header.Size, header.Header.Get("Content-Type"))
		cancel()
		if uerr != nil {
			h.Resp.Fail(w, r, apperr.Internal(uerr))
			return
		}
		user.Avatar = &models.Avatar{StorageID: info.Key, URL: info.URL}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "signup user create")
	defer cancel()

	created, err := h.Users.Create(ctx, user)
	if err != nil {
		// The store re-checks the role and affiliation rules; surface
		// those as the field violations they are, not as server faults.
		switch err {
		case userstore.ErrDuplicateEmail:
			h.Resp.Fail(w, r, apperr.Conflict("a user with this email already exists"))
		case userstore.ErrBadRole:
			vs.Add("role", "role must be one of: standard, pastor, IT")
			h.Resp.Fail(w, r, apperr.Validation(vs))
		case userstore.ErrChurchNeeded:
			vs.Add("churchSelection", "churchSelection is required for pastor and IT accounts")
			h.Resp.Fail(w, r, apperr.Validation(vs))
		default:
			h.Resp.Fail(w, r, apperr.Internal(err))
		}
		return
	}

	h.AuditLog.Signup(ctx, r, created.ID, created.Email, created.Role)

	// Best-effort welcome email; a dead relay must not fail the signup.
	welcome := mailer.BuildWelcomeEmail(mailer.WelcomeEmailData{
		SiteName:  h.SiteName,
		FirstName: created.FirstName,
	})
	welcome.To = created.Email
	if err := h.Mailer.Send(welcome); err != nil {
		h.Log.Warn("welcome email failed",
			zap.String("to", created.Email),
			zap.Error(err))
	}

	token, err := h.Tokens.Issue(created.ID, created.Email)
	if err != nil {
		h.Resp.Fail(w, r, apperr.Internal(err))
		return
	}

	httpjson.Created(w, tokenResponse{
		Status: "success",
		Token:  token,
		Data:   userPayload{User: &created},
	})
}
