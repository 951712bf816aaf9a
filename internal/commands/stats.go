package commands

import (
	"context"
	"flag"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
)

func init() {
	Register(&StatsCmd{})
}

// StatsCmd prints the overview counts.
type StatsCmd struct{}

func (c *StatsCmd) Name() string         { return "stats" }
func (c *StatsCmd) Aliases() []string    { return nil }
func (c *StatsCmd) Synopsis() string     { return "Show task statistics" }
func (c *StatsCmd) Usage() string        { return "taskdeck stats" }
func (c *StatsCmd) NeedsAuth() bool      { return true }
func (c *StatsCmd) RequiredRole() string { return "" }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	stats, err := env.Svc.Stats(ctx)
	if err != nil {
		return apiError(env, err, errOut)
	}
	output.FormatStats(out, stats)
	return exitcode.Success
}
