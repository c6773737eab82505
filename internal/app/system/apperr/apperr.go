// Package apperr defines the application error taxonomy.
//
// Every failure a handler can produce is classified here so the response
// translator can map it to one HTTP status and one envelope shape.
// Operational errors are client-caused (validation, auth, not-found) and
// their message is returned verbatim; non-operational errors are
// unexpected and their detail is only exposed outside production.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gracegate/churchhub/internal/app/system/validate"
)

// Kind classifies an application error.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindInvalidCredential
	KindExpiredCredential
	KindUnknownSubject
	KindInsufficientPrivilege
	KindNotFound
	KindConflict
	KindInvalidIndex
	KindBadRequest
	KindRateLimited
	KindInternal
)

// Error is the application error type carried from stores and middleware
// up to the response translator.
type Error struct {
	Kind       Kind
	Message    string
	Violations validate.Violations // only set for KindValidation
	Err        error               // wrapped cause, for logging
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict, KindInvalidIndex, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated, KindInvalidCredential, KindExpiredCredential, KindUnknownSubject:
		return http.StatusUnauthorized
	case KindInsufficientPrivilege:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Operational reports whether the error is client-caused. Non-operational
// errors get a generic message in production.
func (e *Error) Operational() bool { return e.Kind != KindInternal }

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a multi-violation validation error.
func Validation(vs validate.Violations) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input data", Violations: vs}
}

// Unauthenticated is the failure for a missing bearer credential.
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// NotFound is the failure for a missing record.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict is the failure for a uniqueness violation.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Internal wraps an unexpected error. The message shown to clients is
// substituted in production; err is kept for server-side logging.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "something went wrong", Err: err}
}

// From extracts an *Error from err, or wraps it as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
