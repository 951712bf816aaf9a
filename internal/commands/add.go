package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	status      string
	priority    string
	due         string
	tags        string
	assignee    string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskdeck add [--priority <p>] [--due <date>] [--tags <a,b>] [--assignee <id>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool      { return true }
func (c *AddCmd) RequiredRole() string { return "" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.tags, "tags", "", "")
	fs.StringVar(&c.assignee, "assignee", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	req := service.CreateTask{
		Title:       title,
		Description: c.description,
		Status:      c.status,
		Priority:    c.priority,
		DueDate:     c.due,
		Assignee:    c.assignee,
	}
	if c.tags != "" {
		for _, tag := range strings.Split(c.tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	task, err := env.Svc.CreateTask(ctx, req)
	if err != nil {
		return apiError(env, err, errOut)
	}

	// A new task changes every listing, so cached pages are stale.
	env.Tasks.InvalidateAll()

	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "created %s\n", task.ID)
	}
	return exitcode.Success
}
