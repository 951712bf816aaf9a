package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd applies a partial update to a task.
type EditCmd struct {
	title       string
	description string
	status      string
	priority    string
	due         string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskdeck edit [--title <t>] [--status <s>] [--priority <p>] [--due <date>] <id>"
}
func (c *EditCmd) NeedsAuth() bool      { return true }
func (c *EditCmd) RequiredRole() string { return "" }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	if c.title == "" && c.description == "" && c.status == "" && c.priority == "" && c.due == "" {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}
	req := service.UpdateTask{
		Title:       c.title,
		Description: c.description,
		Status:      c.status,
		Priority:    c.priority,
		DueDate:     c.due,
	}

	task, err := ResolveTask(ctx, env.Svc, args[0])
	if err != nil {
		if errors.Is(err, ErrAmbiguousTask) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return apiError(env, err, errOut)
	}

	if _, err := env.Svc.UpdateTask(ctx, task.ID, req); err != nil {
		return apiError(env, err, errOut)
	}
	env.Tasks.InvalidateAll()

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
