// Package auth resolves bearer credentials to request-scoped identities.
//
// Tokens are HS256 JWTs signed with the server secret. The middleware
// re-resolves the token subject against the user store on every request,
// so a token for a deleted account stops working immediately.
package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gracegate/churchhub/internal/domain/models"
)

// Identity is the minimal projection injected into r.Context() for the
// lifetime of one authenticated request.
type Identity struct {
	ID    primitive.ObjectID
	Email string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated identity & “found?” flag.
func CurrentUser(r *http.Request) (*Identity, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Identity)
	return u, ok
}

// UserResolver re-resolves a token subject to a full user record.
// *userstore.Store satisfies this.
type UserResolver interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func withUser(r *http.Request, u *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects an identity directly into the request context.
// For handler tests only; bypasses token verification.
func WithTestUser(r *http.Request, u *Identity) *http.Request {
	return withUser(r, u)
}
