package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string         { return "logout" }
func (c *LogoutCmd) Aliases() []string    { return nil }
func (c *LogoutCmd) Synopsis() string     { return "Discard the stored session" }
func (c *LogoutCmd) Usage() string        { return "taskdeck logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool      { return false }
func (c *LogoutCmd) RequiredRole() string { return "" }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !env.Session.Authenticated() {
		if !env.Cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	// Clears the persisted session, then drops cached results so nothing
	// fetched under this identity survives it.
	if err := env.Session.Logout(); err != nil {
		fmt.Fprintf(errOut, "error: failed to clear session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
