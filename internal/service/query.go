package service

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/maxviazov/swapi-mock/internal/model"
)

// PageSize is the fixed number of records per SWAPI page.
const PageSize = 10

// Query carries the parsed list parameters.
// Search is nil when the client did not send the parameter at all.
type Query struct {
	Page   int
	Search *string
}

// DefaultQuery is page 1 without filtering.
func DefaultQuery() Query {
	return Query{Page: 1}
}

// Apply runs filter, paginate, count and next-link synthesis over records.
// Pages are 1-based; non-positive pages are not rejected and simply come back empty.
func Apply[T model.Resource](baseURL, endpoint string, records []T, q Query) model.Envelope[T] {
	filtered := filterByName(records, q.Search)
	page := paginate(filtered, q.Page)
	count := countOf(len(filtered), len(page))

	return model.Envelope[T]{
		Count:   count,
		Next:    nextURL(baseURL, endpoint, count, q),
		Results: page,
	}
}

func filterByName[T model.Resource](records []T, search *string) []T {
	if search == nil || *search == "" {
		return records
	}
	needle := strings.ToLower(*search)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.GetName()), needle) {
			out = append(out, r)
		}
	}
	return out
}

// paginate returns a fresh slice so envelopes never alias the table.
func paginate[T model.Resource](records []T, page int) []T {
	n := len(records)
	// a start before index 0 clamps to an empty window; page-1 > n/PageSize
	// means start > n and is checked before multiplying so huge pages cannot overflow
	if page < 1 || page-1 > n/PageSize {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= n {
		return []T{}
	}
	end := min(start+PageSize, n)
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}

// countOf reports zero for an empty page even when matches exist, as SWAPI does.
func countOf(matched, delivered int) int {
	if delivered == 0 {
		return 0
	}
	return matched
}

func nextURL(baseURL, endpoint string, count int, q Query) *string {
	// count > 0 implies q.Page is small enough for the product to fit
	if count == 0 || count <= q.Page*PageSize {
		return nil
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteByte('/')
	b.WriteString(endpoint)
	b.WriteString("?page=")
	b.WriteString(strconv.Itoa(q.Page + 1))
	if q.Search != nil {
		b.WriteString("&search=")
		b.WriteString(url.QueryEscape(*q.Search))
	}
	s := b.String()
	return &s
}

// ParsePage reads the leading integer of raw, ignoring surrounding garbage.
// Absent or non-numeric input falls back to page 1. Zero and negatives pass through.
func ParsePage(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r")
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultQuery().Page
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// digits only, so this is overflow: saturate like an absurdly large page
		if sign < 0 {
			return math.MinInt
		}
		return math.MaxInt
	}
	return sign * n
}
