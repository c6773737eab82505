// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
// Keep this as an int because call sites add/subtract and then
// cast to int64 for Mongo Find().SetLimit().
const PageSize = 20

// MaxPageSize caps per_page so a single request cannot drag the whole
// collection over the wire.
const MaxPageSize = 100

// Page holds the parsed paging parameters for one request.
type Page struct {
	Number  int // 1-based page number
	PerPage int
}

// Parse extracts "page" and "per_page" query parameters. Missing or
// invalid values fall back to page 1 and PageSize; per_page is clamped
// to MaxPageSize.
func Parse(r *http.Request) Page {
	p := Page{Number: 1, PerPage: PageSize}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Number = n
		}
	}
	if s := query.Get(r, "per_page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.PerPage = n
			if p.PerPage > MaxPageSize {
				p.PerPage = MaxPageSize
			}
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.PerPage)
}

// LimitPlusOne returns PerPage+1 as int64 for look-ahead pagination
// (fetch one extra document to detect hasNext).
func (p Page) LimitPlusOne() int64 {
	return int64(p.PerPage + 1)
}

// Trim trims a slice fetched with LimitPlusOne down to PerPage and
// reports whether a further page exists. It modifies the slice in place.
func Trim[T any](rows *[]T, p Page) (hasNext bool) {
	if len(*rows) > p.PerPage {
		*rows = (*rows)[:p.PerPage]
		return true
	}
	return false
}
