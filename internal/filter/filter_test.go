package filter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/internal/filter"
)

func TestParseEmptyQueryYieldsDefaults(t *testing.T) {
	got := filter.Parse("")
	want := filter.State{Page: 1, Limit: 20, Sort: "createdAt:-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFillsDefaultsForAbsentFields(t *testing.T) {
	got := filter.Parse("status=completed&page=2")
	want := filter.State{Status: "completed", Page: 2, Limit: 20, Sort: "createdAt:-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalidNumbersFallBack(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"non-numeric page", "page=abc", 1, 20},
		{"zero page", "page=0", 1, 20},
		{"negative page", "page=-3", 1, 20},
		{"non-numeric limit", "limit=lots", 1, 20},
		{"disallowed limit", "limit=37", 1, 20},
		{"allowed limit", "limit=50", 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filter.Parse(tt.query)
			if s.Page != tt.page || s.Limit != tt.limit {
				t.Errorf("Parse(%q) = page %d limit %d, want page %d limit %d",
					tt.query, s.Page, s.Limit, tt.page, tt.limit)
			}
		})
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	got := filter.Parse("status=todo&utm_source=newsletter&flavor=grape")
	want := filter.State{Status: "todo", Page: 1, Limit: 20, Sort: "createdAt:-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	s := filter.Default()
	s.Search = "report"
	if got := s.Encode(); got != "search=report" {
		t.Errorf("Encode() = %q, want %q", got, "search=report")
	}
}

func TestEncodeDefaultsToEmpty(t *testing.T) {
	if got := filter.Default().Encode(); got != "" {
		t.Errorf("Encode() of defaults = %q, want empty", got)
	}
}

func TestEncodeStableOrdering(t *testing.T) {
	a := filter.Default()
	a.Status = "todo"
	a.Search = "report"
	a.Priority = "high"

	b := filter.Default()
	b.Priority = "high"
	b.Search = "report"
	b.Status = "todo"

	if a.Encode() != b.Encode() {
		t.Errorf("equal states encoded differently: %q vs %q", a.Encode(), b.Encode())
	}
}

func TestRoundTrip(t *testing.T) {
	states := []filter.State{
		filter.Default(),
		{Status: "in-progress", Priority: "urgent", Page: 3, Limit: 50, Sort: "dueDate:1"},
		{Search: "quarterly report", Tags: "finance,q3", Page: 1, Limit: 20, Sort: "createdAt:-1"},
		{Assignee: "u42", Owner: "u7", DueFrom: "2026-01-01", DueTo: "2026-02-01", Page: 1, Limit: 10, Sort: "createdAt:-1"},
	}
	for _, want := range states {
		got := filter.Parse(want.Encode())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestActiveCountsAgainstDefaults(t *testing.T) {
	s := filter.Default()
	if s.Active() != 0 {
		t.Errorf("default Active() = %d, want 0", s.Active())
	}

	s.Status = "todo"
	s.Page = 5 // navigation, not a filter
	if s.Active() != 1 {
		t.Errorf("Active() = %d, want 1", s.Active())
	}

	s.Limit = 50
	s.Sort = "dueDate:1"
	if s.Active() != 3 {
		t.Errorf("Active() = %d, want 3", s.Active())
	}
}
