// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-submitted text before it is stored.
//
// Description fields (principal, deacons, trustees) may carry simple
// formatting, so they pass through a UGC policy that keeps benign markup
// and drops scripts, event handlers and dangerous URLs. Name and title
// fields must be plain text and are stripped of all markup.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugcPolicy keeps common user-generated formatting (paragraphs,
	// emphasis, lists, links with safe protocols) and removes everything
	// executable.
	ugcPolicy = bluemonday.UGCPolicy()

	// strictPolicy strips every tag, leaving text content only.
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans a rich-text field, preserving benign formatting.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugcPolicy.Sanitize(s)
}

// StripTags reduces a field to plain text, removing all markup.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// IsPlainText reports whether s contains no markup at all. A bare "<"
// or ">" (e.g. "5 < 10") does not count as markup.
func IsPlainText(s string) bool {
	lt := strings.IndexByte(s, '<')
	if lt < 0 {
		return true
	}
	return strings.IndexByte(s[lt:], '>') < 0
}
