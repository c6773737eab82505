// Package httpjson writes the API's uniform JSON envelopes.
//
// Success helpers write the payload directly. Failures funnel through a
// single Translator so every handler produces the same
// {status, message, errors?} envelope and status code.
package httpjson

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/gracegate/churchhub/internal/app/system/apperr"
	"github.com/gracegate/churchhub/internal/app/system/validate"
	"go.uber.org/zap"
)

// failEnvelope is the fixed error response shape.
//
//	{"status":"fail"|"error", "message":"…", "errors":[{field,message}…]}
//
// Detail and Stack are only populated outside production.
type failEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  validate.Violations `json:"errors,omitempty"`
	Detail  string              `json:"detail,omitempty"`
	Stack   string              `json:"stack,omitempty"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) { Write(w, http.StatusOK, v) }

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) { Write(w, http.StatusCreated, v) }

// NoContent writes a 204 response.
func NoContent(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

// Translator maps application errors to the failure envelope. One
// instance is shared by all handlers and middleware.
type Translator struct {
	Log  *zap.Logger
	Prod bool // true when env == "prod"; hides non-operational detail
}

// NewTranslator builds the shared error translator.
func NewTranslator(logger *zap.Logger, prod bool) *Translator {
	return &Translator{Log: logger, Prod: prod}
}

// Fail classifies err and writes the failure envelope.
//
// Operational errors (4xx) use status "fail" and return their message
// verbatim. Non-operational errors use status "error"; the message is
// replaced with a generic string in production while the original error
// is logged server-side, and the full detail plus stack is included in
// non-production environments for diagnosis.
func (t *Translator) Fail(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.From(err)

	env := failEnvelope{Message: ae.Message, Errors: ae.Violations}
	code := ae.HTTPStatus()

	if ae.Operational() {
		env.Status = "fail"
	} else {
		env.Status = "error"
		t.Log.Error("unexpected error",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
		if !t.Prod {
			env.Detail = ae.Error()
			env.Stack = string(debug.Stack())
		}
	}

	Write(w, code, env)
}
