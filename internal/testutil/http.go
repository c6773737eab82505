package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gracegate/churchhub/internal/app/system/auth"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// WithIdentity injects an authenticated identity into the request
// context, bypassing token verification.
func WithIdentity(r *http.Request, id primitive.ObjectID, email string) *http.Request {
	return auth.WithTestUser(r, &auth.Identity{ID: id, Email: email})
}

// NewAuthenticatedRequest creates an HTTP request carrying an identity
// in context.
func NewAuthenticatedRequest(method, target string, id primitive.ObjectID, email string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithIdentity(req, id, email)
}
