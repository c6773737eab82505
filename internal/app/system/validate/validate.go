// Package validate collects contract violations for request payloads.
//
// Validation is exhaustive, not fail-fast: a payload is checked field by
// field and every violation is reported in one pass, each naming the
// offending field path. Format checks (email, url) delegate to
// go-playground/validator so the rules match the rest of the ecosystem.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation names one failed check on one field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations accumulates the results of one validation pass.
type Violations []Violation

// Add appends a violation for the given field path.
func (v *Violations) Add(field, format string, args ...any) {
	*v = append(*v, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Merge appends all violations from another pass (used for nested blocks).
func (v *Violations) Merge(other Violations) {
	*v = append(*v, other...)
}

// OK reports whether the pass found no violations.
func (v Violations) OK() bool { return len(v) == 0 }

// single shared validator instance; Var lookups are safe for concurrent use.
var checker = validator.New()

// Required reports a violation when a string field is blank.
func (v *Violations) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "%s is required", field)
	}
}

// Email reports a violation when value is not a plausible email address.
// Blank values are ignored; pair with Required for mandatory fields.
func (v *Violations) Email(field, value string) {
	if value == "" {
		return
	}
	if err := checker.Var(value, "email"); err != nil {
		v.Add(field, "%s must be a valid email address", field)
	}
}

// URL reports a violation when value is not a valid URL.
// Blank values are ignored.
func (v *Violations) URL(field, value string) {
	if value == "" {
		return
	}
	if err := checker.Var(value, "url"); err != nil {
		v.Add(field, "%s must be a valid URL", field)
	}
}

// MinLen reports a violation when a string is shorter than min characters.
// Blank values are ignored.
func (v *Violations) MinLen(field, value string, min int) {
	if value == "" {
		return
	}
	if len(value) < min {
		v.Add(field, "%s must be at least %d characters", field, min)
	}
}

// OneOf reports a violation when value is outside the allowed set.
// Blank values are ignored.
func (v *Violations) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// NonEmpty reports a violation when a required array field has no elements.
func NonEmpty[T any](v *Violations, field string, items []T) {
	if len(items) == 0 {
		v.Add(field, "%s must contain at least one element", field)
	}
}
