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
	Register(&DoneCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string         { return "done" }
func (c *DoneCmd) Aliases() []string    { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string     { return "Mark a task completed" }
func (c *DoneCmd) Usage() string        { return "taskdeck done <id>" }
func (c *DoneCmd) NeedsAuth() bool      { return true }
func (c *DoneCmd) RequiredRole() string { return "" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
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

	if _, err := env.Svc.UpdateTask(ctx, task.ID, service.UpdateTask{Status: service.StatusCompleted}); err != nil {
		return apiError(env, err, errOut)
	}
	env.Tasks.InvalidateAll()

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
