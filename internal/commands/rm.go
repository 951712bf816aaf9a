package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd deletes a task.
type RmCmd struct{}

func (c *RmCmd) Name() string         { return "rm" }
func (c *RmCmd) Aliases() []string    { return []string{"delete"} }
func (c *RmCmd) Synopsis() string     { return "Delete a task" }
func (c *RmCmd) Usage() string        { return "taskdeck rm <id>" }
func (c *RmCmd) NeedsAuth() bool      { return true }
func (c *RmCmd) RequiredRole() string { return "" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
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

	if err := env.Svc.DeleteTask(ctx, task.ID); err != nil {
		return apiError(env, err, errOut)
	}
	env.Tasks.InvalidateAll()

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
