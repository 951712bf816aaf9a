package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command: create an account and sign
// in with its first session.
type RegisterCmd struct {
	name     string
	email    string
	password string
}

// SetDetails sets the account details (for testing).
func (c *RegisterCmd) SetDetails(name, email, password string) {
	c.name = name
	c.email = email
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "taskdeck register --name <name> --email <email> --password <password>"
}
func (c *RegisterCmd) NeedsAuth() bool      { return false }
func (c *RegisterCmd) RequiredRole() string { return "" }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", c.name, "")
	fs.StringVar(&c.email, "email", c.email, "")
	fs.StringVar(&c.password, "password", c.password, "")
}

func (c *RegisterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.name == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: name, email and password required")
		return exitcode.UserError
	}
	if env.Svc == nil {
		fmt.Fprintln(errOut, "error: no backend configured")
		return exitcode.AuthError
	}

	sess, err := env.Svc.Register(ctx, c.name, c.email, c.password)
	if err != nil {
		fmt.Fprintf(errOut, "error: registration failed: %v\n", err)
		return exitcode.AuthError
	}

	if err := env.Session.Login(sess.User, sess.Token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "registered as %s\n", sess.User.Email)
	}
	return exitcode.Success
}
