package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints one task with its activity history.
type ShowCmd struct {
	activity bool
}

func (c *ShowCmd) Name() string         { return "show" }
func (c *ShowCmd) Aliases() []string    { return nil }
func (c *ShowCmd) Synopsis() string     { return "Show a task" }
func (c *ShowCmd) Usage() string        { return "taskdeck show [--activity] <id>" }
func (c *ShowCmd) NeedsAuth() bool      { return true }
func (c *ShowCmd) RequiredRole() string { return "" }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.activity, "activity", false, "")
}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	task, err := ResolveTask(ctx, env.Svc, args[0])
	if err != nil {
		if errors.Is(err, ErrAmbiguousTask) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return apiError(env, err, errOut)
	}

	output.FormatTaskDetail(out, task)

	if c.activity {
		activity, err := env.Svc.TaskActivity(ctx, task.ID)
		if err != nil {
			return apiError(env, err, errOut)
		}
		if len(activity) > 0 {
			fmt.Fprintln(out)
			for _, a := range activity {
				output.FormatActivity(out, a)
			}
		}
	}
	return exitcode.Success
}
