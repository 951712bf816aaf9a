package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/filter"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command: mount the saved query, apply
// flag overrides, fetch through the cache, and print the page.
type TasksCmd struct {
	fs *flag.FlagSet

	status   string
	priority string
	search   string
	assignee string
	owner    string
	dueFrom  string
	dueTo    string
	tags     string
	sort     string
	page     int
	limit    int
	clear    bool
}

func (c *TasksCmd) Name() string         { return "tasks" }
func (c *TasksCmd) Aliases() []string    { return []string{"ls"} }
func (c *TasksCmd) Synopsis() string     { return "List tasks" }
func (c *TasksCmd) Usage() string {
	return "taskdeck tasks [--status <s>] [--priority <p>] [--search <text>] [--page <n>] [--limit <n>] [--sort <field:dir>] [--clear]"
}
func (c *TasksCmd) NeedsAuth() bool      { return true }
func (c *TasksCmd) RequiredRole() string { return "" }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.assignee, "assignee", "", "")
	fs.StringVar(&c.owner, "owner", "", "")
	fs.StringVar(&c.dueFrom, "due-from", "", "")
	fs.StringVar(&c.dueTo, "due-to", "", "")
	fs.StringVar(&c.tags, "tags", "", "")
	fs.StringVar(&c.sort, "sort", "", "")
	fs.IntVar(&c.page, "page", 0, "")
	fs.IntVar(&c.limit, "limit", 0, "")
	fs.BoolVar(&c.clear, "clear", false, "")
}

func (c *TasksCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	provided := make(map[string]bool)
	if c.fs != nil {
		c.fs.Visit(func(f *flag.Flag) { provided[f.Name] = true })
	}

	if provided["page"] && c.page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}
	if provided["limit"] && !filter.ValidLimit(c.limit) {
		fmt.Fprintf(errOut, "error: invalid limit: %d (allowed: 10, 20, 50, 100)\n", c.limit)
		return exitcode.UserError
	}

	addr := filter.NewStoreAddress(env.Store)
	load := func(ctx context.Context, s filter.State) (service.TaskPage, error) {
		return env.Tasks.Get(ctx, s.Encode(), func(ctx context.Context) (service.TaskPage, error) {
			return env.Svc.Tasks(ctx, s)
		})
	}
	ctrl := filter.NewController(addr, load, env.Cfg.Logger)

	var page service.TaskPage
	var err error
	switch {
	case c.clear:
		page, err = ctrl.Clear(ctx)
	default:
		next := ctrl.State()
		facetChanged := false
		facet := func(name string, dst *string, v string) {
			if provided[name] && *dst != v {
				*dst = v
				facetChanged = true
			}
		}
		facet("status", &next.Status, c.status)
		facet("priority", &next.Priority, c.priority)
		facet("search", &next.Search, c.search)
		facet("assignee", &next.Assignee, c.assignee)
		facet("owner", &next.Owner, c.owner)
		facet("due-from", &next.DueFrom, c.dueFrom)
		facet("due-to", &next.DueTo, c.dueTo)
		facet("tags", &next.Tags, c.tags)
		facet("sort", &next.Sort, c.sort)
		if provided["limit"] && next.Limit != c.limit {
			next.Limit = c.limit
			facetChanged = true
		}

		// A facet change invalidates the meaning of the old page, so reset
		// it unless the caller asked for a page explicitly.
		if provided["page"] {
			next.Page = c.page
		} else if facetChanged {
			next.Page = filter.DefaultPage
		}
		page, err = ctrl.Set(ctx, next)
	}
	if err != nil {
		return apiError(env, err, errOut)
	}

	if len(page.Items) == 0 {
		if !env.Cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	start := (page.Page-1)*page.Limit + 1
	for i, task := range page.Items {
		output.FormatTask(out, start+i, task)
	}
	output.FormatPageFooter(out, page)
	return exitcode.Success
}
