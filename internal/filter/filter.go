// Package filter holds the task query record and keeps it synchronized
// with its serialized address form and the remote fetch that it keys.
package filter

import (
	"net/url"
	"strconv"
)

// Defaults for the always-present fields. A field is serialized iff it
// differs from its default, so an empty query string denotes exactly this
// record.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	DefaultSort  = "createdAt:-1"
)

// validLimits are the accepted page sizes. Anything else parses back to
// DefaultLimit.
var validLimits = map[int]bool{10: true, 20: true, 50: true, 100: true}

// ValidLimit reports whether n is an accepted page size.
func ValidLimit(n int) bool { return validLimits[n] }

// State is the canonical record describing which tasks to fetch and how to
// paginate and sort them. The zero value is not valid; use Default.
type State struct {
	Status   string
	Priority string
	Search   string
	Assignee string
	Owner    string
	DueFrom  string
	DueTo    string
	Tags     string
	Page     int
	Limit    int
	Sort     string
}

// Default returns the record an empty query string denotes.
func Default() State {
	return State{Page: DefaultPage, Limit: DefaultLimit, Sort: DefaultSort}
}

// Parse builds a State from a raw query string, filling defaults for
// absent fields. Unknown keys are ignored. Non-numeric page/limit values
// and out-of-range limits fall back to their defaults rather than erroring.
func Parse(rawQuery string) State {
	s := Default()
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return s
	}

	s.Status = values.Get("status")
	s.Priority = values.Get("priority")
	s.Search = values.Get("search")
	s.Assignee = values.Get("assignee")
	s.Owner = values.Get("owner")
	s.DueFrom = values.Get("dueFrom")
	s.DueTo = values.Get("dueTo")
	s.Tags = values.Get("tags")

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		s.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && validLimits[limit] {
		s.Limit = limit
	}
	if sort := values.Get("sort"); sort != "" {
		s.Sort = sort
	}
	return s
}

// Encode serializes the record to its canonical query-string form: keys in
// a stable order, a field present iff it differs from its default. Equal
// records always encode to identical strings, which makes the encoding
// usable as a cache key.
func (s State) Encode() string {
	values := url.Values{}
	setNonEmpty(values, "status", s.Status)
	setNonEmpty(values, "priority", s.Priority)
	setNonEmpty(values, "search", s.Search)
	setNonEmpty(values, "assignee", s.Assignee)
	setNonEmpty(values, "owner", s.Owner)
	setNonEmpty(values, "dueFrom", s.DueFrom)
	setNonEmpty(values, "dueTo", s.DueTo)
	setNonEmpty(values, "tags", s.Tags)
	if s.Page != DefaultPage {
		values.Set("page", strconv.Itoa(s.Page))
	}
	if s.Limit != DefaultLimit {
		values.Set("limit", strconv.Itoa(s.Limit))
	}
	if s.Sort != DefaultSort && s.Sort != "" {
		values.Set("sort", s.Sort)
	}
	// url.Values.Encode sorts by key, giving the stable ordering.
	return values.Encode()
}

// Active reports how many facet fields are set, measured against the
// defaults rather than hard-coded literals. Page is excluded: being on a
// later page is navigation, not filtering.
func (s State) Active() int {
	n := 0
	for _, v := range []string{s.Status, s.Priority, s.Search, s.Assignee, s.Owner, s.DueFrom, s.DueTo, s.Tags} {
		if v != "" {
			n++
		}
	}
	if s.Limit != DefaultLimit {
		n++
	}
	if s.Sort != DefaultSort {
		n++
	}
	return n
}

// Facets returns a copy with page and limit normalized to defaults. Two
// records with equal facets describe the same filtered set.
func (s State) Facets() State {
	s.Page = DefaultPage
	s.Limit = DefaultLimit
	return s
}

func setNonEmpty(values url.Values, key, v string) {
	if v != "" {
		values.Set(key, v)
	}
}
