// Package authz gates privileged routes behind the elevation flag.
package authz

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/auth"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
)

// AdminGate enforces the administrator elevation check. It must be
// mounted after auth.Middleware.Require.
type AdminGate struct {
	Users auth.UserResolver
	Resp  *httpjson.Translator
	Log   *zap.Logger
}

// NewAdminGate builds the elevation gate.
func NewAdminGate(users auth.UserResolver, resp *httpjson.Translator, logger *zap.Logger) *AdminGate {
	return &AdminGate{Users: users, Resp: resp, Log: logger}
}

// RequireAdmin re-fetches the full user record, trusting only the id from
// the authenticated identity, and reads the current elevation flag.
//
// The re-fetch is deliberate: it prevents a stale or forged claim of
// privilege from an earlier token payload. Do not replace it with a
// cached or token-embedded flag.
func (g *AdminGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := auth.CurrentUser(r)
		if !ok {
			g.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
			return
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), g.Log, "authz elevation lookup")
		defer cancel()

		user, err := g.Users.GetByID(ctx, ident.ID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				g.Resp.Fail(w, r, apperr.New(apperr.KindUnknownSubject, "user not found"))
				return
			}
			g.Resp.Fail(w, r, apperr.Internal(err))
			return
		}

		if !user.IsAdmin {
			g.Resp.Fail(w, r, apperr.New(apperr.KindInsufficientPrivilege, "you do not have permission to perform this action"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
