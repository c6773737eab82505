// Package normalize holds small canonicalization helpers applied before
// anything is persisted, so lookups behave case-insensitively where the
// product expects it.
package normalize

import "strings"

// Email lowercases and trims an email address. Email matching is always
// case-insensitive in this app.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
