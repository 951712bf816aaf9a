package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string         { return "login" }
func (c *LoginCmd) Aliases() []string    { return nil }
func (c *LoginCmd) Synopsis() string     { return "Sign in to the task server" }
func (c *LoginCmd) Usage() string        { return "taskdeck login --email <email> --password <password>" }
func (c *LoginCmd) NeedsAuth() bool      { return false }
func (c *LoginCmd) RequiredRole() string { return "" }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", c.email, "")
	fs.StringVar(&c.password, "password", c.password, "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}
	if env.Svc == nil {
		fmt.Fprintln(errOut, "error: no backend configured")
		return exitcode.AuthError
	}

	sess, err := env.Svc.Login(ctx, c.email, c.password)
	if err != nil {
		// A failed login leaves any stored session untouched.
		fmt.Fprintf(errOut, "error: login failed: %v\n", err)
		return exitcode.AuthError
	}

	if err := env.Session.Login(sess.User, sess.Token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", sess.User.Email)
	}

	// If a guarded command was denied before this login, offer it back.
	if replay, ok := env.Store.Get(ReplayKey); ok && replay != "" {
		_ = env.Store.Delete(ReplayKey)
		if !env.Cfg.Quiet {
			fmt.Fprintf(out, "you can now run: taskdeck %s\n", replay)
		}
	}
	return exitcode.Success
}
