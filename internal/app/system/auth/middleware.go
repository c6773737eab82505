package auth

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/httpjson"
	"github.com/gracegate/churchhub/internal/app/system/timeouts"
)

// Middleware guards routes that need an authenticated caller.
type Middleware struct {
	Tokens *Tokens
	Users  UserResolver
	Resp   *httpjson.Translator
	Log    *zap.Logger
}

// NewMiddleware builds the bearer-auth middleware.
func NewMiddleware(tokens *Tokens, users UserResolver, resp *httpjson.Translator, logger *zap.Logger) *Middleware {
	return &Middleware{Tokens: tokens, Users: users, Resp: resp, Log: logger}
}

// Require rejects requests without a valid bearer credential.
//
// Checks, in order: header present with "Bearer " prefix (401
// Unauthenticated), token signature/structure (401 InvalidCredential),
// token expiry (401 ExpiredCredential), and subject still resolvable
// against the user store (401 UnknownSubject). On success the minimal
// {id, email} projection is available via CurrentUser for the remainder
// of the request.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.Resp.Fail(w, r, apperr.Unauthenticated("you are not logged in, please log in to get access"))
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.Tokens.Verify(raw)
		if err != nil {
			m.Resp.Fail(w, r, err)
			return
		}

		subjectID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			m.Resp.Fail(w, r, apperr.New(apperr.KindInvalidCredential, "invalid token, please log in again"))
			return
		}

		// Re-resolve the subject so tokens for deleted accounts stop working.
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), m.Log, "auth subject lookup")
		defer cancel()

		user, err := m.Users.GetByID(ctx, subjectID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				m.Resp.Fail(w, r, apperr.New(apperr.KindUnknownSubject, "the user belonging to this token no longer exists"))
				return
			}
			m.Resp.Fail(w, r, apperr.Internal(err))
			return
		}

		next.ServeHTTP(w, withUser(r, &Identity{ID: user.ID, Email: user.Email}))
	})
}
