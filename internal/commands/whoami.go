package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the current identity.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string         { return "whoami" }
func (c *WhoamiCmd) Aliases() []string    { return nil }
func (c *WhoamiCmd) Synopsis() string     { return "Show the signed-in user" }
func (c *WhoamiCmd) Usage() string        { return "taskdeck whoami" }
func (c *WhoamiCmd) NeedsAuth() bool      { return true }
func (c *WhoamiCmd) RequiredRole() string { return "" }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	u := env.Session.User()
	fmt.Fprintf(out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	return exitcode.Success
}
