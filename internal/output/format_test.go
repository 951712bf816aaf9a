package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdeck/internal/output"
	"taskdeck/internal/service"
	"taskdeck/internal/testutil"
	"taskdeck/internal/theme"
)

func init() {
	// Strip color so output is byte-stable across environments.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestApplySwapsWholePalette(t *testing.T) {
	output.Apply(theme.Dark)
	if output.Active() != "dark" {
		t.Errorf("active = %q, want dark", output.Active())
	}
	output.Apply(theme.Light)
	if output.Active() != "light" {
		t.Errorf("active = %q, want light", output.Active())
	}
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 3, service.Task{
		ID:       "64f1c2aa91b2",
		Title:    "Ship the quarterly report",
		Status:   service.StatusInProgress,
		Priority: service.PriorityHigh,
	})

	got := buf.String()
	if !strings.Contains(got, "   3  64f1c2aa") {
		t.Errorf("missing number/short id: %q", got)
	}
	if !strings.Contains(got, "in-progress") || !strings.Contains(got, "high") {
		t.Errorf("missing status/priority: %q", got)
	}
	if !strings.Contains(got, "Ship the quarterly report") {
		t.Errorf("missing title: %q", got)
	}
}

func TestFormatTaskNormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{ID: "t1", Title: "  \n ", Status: "todo", Priority: "low"})
	if !strings.Contains(buf.String(), "(untitled)") {
		t.Errorf("expected (untitled), got %q", buf.String())
	}
}

func TestFormatTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTaskDetail(&buf, service.Task{
		ID:          "64f1c2aa91b2",
		Title:       "Ship the quarterly report",
		Description: "Gather numbers from finance and publish.",
		Status:      service.StatusInProgress,
		Priority:    service.PriorityHigh,
		DueDate:     "2024-06-30",
		Tags:        []string{"finance", "q2"},
		Assignee:    &service.User{Name: "Bob"},
		Owner:       service.User{Name: "Alice"},
	})
	testutil.GoldenString(t, "task_detail", buf.String())
}

func TestFormatPageFooter(t *testing.T) {
	var buf bytes.Buffer
	output.FormatPageFooter(&buf, service.TaskPage{Page: 2, Pages: 5, Total: 87, Limit: 20})
	if got := buf.String(); got != "page 2 of 5 (87 tasks)\n" {
		t.Errorf("footer = %q", got)
	}

	buf.Reset()
	output.FormatPageFooter(&buf, service.TaskPage{Page: 1, Pages: 1, Total: 1, Limit: 20})
	if got := buf.String(); got != "page 1 of 1 (1 task)\n" {
		t.Errorf("footer = %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	output.FormatStats(&buf, service.Stats{
		ByStatus:   map[string]int{"todo": 4, "in-progress": 2, "completed": 9},
		ByPriority: map[string]int{"low": 1, "medium": 5, "high": 7, "urgent": 2},
		Overdue:    3,
	})

	got := buf.String()
	for _, want := range []string{"by status", "todo", "by priority", "urgent", "overdue: 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}
