package output

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/service"
)

// FormatTask formats one task line of a listing.
// Format: "{N:>4}  {ID:<8}  {STATUS:<12} {PRIORITY:<7} {TITLE}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %-8s  %s %s %s\n",
		num,
		shortID(task.ID),
		styleStatus(task.Status).Render(fmt.Sprintf("%-12s", task.Status)),
		stylePriority(task.Priority).Render(fmt.Sprintf("%-7s", task.Priority)),
		normalizeTitle(task.Title),
	)
}

// FormatTaskDetail formats the full single-task view.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintln(w, active.Title.Render(normalizeTitle(task.Title)))
	fmt.Fprintf(w, "id:        %s\n", task.ID)
	fmt.Fprintf(w, "status:    %s\n", styleStatus(task.Status).Render(task.Status))
	fmt.Fprintf(w, "priority:  %s\n", stylePriority(task.Priority).Render(task.Priority))
	if task.DueDate != "" {
		fmt.Fprintf(w, "due:       %s\n", task.DueDate)
	}
	if len(task.Tags) > 0 {
		fmt.Fprintf(w, "tags:      %s\n", strings.Join(task.Tags, ", "))
	}
	if task.Assignee != nil {
		fmt.Fprintf(w, "assignee:  %s\n", task.Assignee.Name)
	}
	fmt.Fprintf(w, "owner:     %s\n", task.Owner.Name)
	if task.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, task.Description)
	}
}

// FormatPageFooter formats the pagination line under a listing.
// Format: "page {P} of {PAGES} ({TOTAL} tasks)"
func FormatPageFooter(w io.Writer, page service.TaskPage) {
	noun := "tasks"
	if page.Total == 1 {
		noun = "task"
	}
	fmt.Fprintln(w, active.Muted.Render(
		fmt.Sprintf("page %d of %d (%d %s)", page.Page, page.Pages, page.Total, noun)))
}

// FormatActivity formats one activity entry.
func FormatActivity(w io.Writer, a service.Activity) {
	line := fmt.Sprintf("%s  %s %s", a.CreatedAt, a.User.Name, a.Action)
	if a.Field != "" {
		line += fmt.Sprintf(" %s: %s -> %s", a.Field, a.OldValue, a.NewValue)
	}
	fmt.Fprintln(w, active.Muted.Render(line))
}

// FormatUser formats one user line for the users command.
func FormatUser(w io.Writer, u service.User) {
	fmt.Fprintf(w, "%-8s  %-7s %s <%s>\n", shortID(u.ID), u.Role, u.Name, u.Email)
}

// FormatStats formats the overview.
func FormatStats(w io.Writer, stats service.Stats) {
	fmt.Fprintln(w, active.Title.Render("by status"))
	for _, status := range []string{service.StatusTodo, service.StatusInProgress, service.StatusCompleted} {
		fmt.Fprintf(w, "  %s %d\n", styleStatus(status).Render(fmt.Sprintf("%-12s", status)), stats.ByStatus[status])
	}
	fmt.Fprintln(w, active.Title.Render("by priority"))
	for _, priority := range []string{service.PriorityLow, service.PriorityMedium, service.PriorityHigh, service.PriorityUrgent} {
		fmt.Fprintf(w, "  %s %d\n", stylePriority(priority).Render(fmt.Sprintf("%-7s", priority)), stats.ByPriority[priority])
	}
	if stats.Overdue > 0 {
		fmt.Fprintln(w, active.Err.Render(fmt.Sprintf("overdue: %d", stats.Overdue)))
	}
}

// shortID returns the first 8 characters of an ID, enough to reference a
// task by prefix.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
