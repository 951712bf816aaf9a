package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&UsersCmd{})
}

// UsersCmd lists accounts and changes roles. Admin only.
type UsersCmd struct{}

func (c *UsersCmd) Name() string         { return "users" }
func (c *UsersCmd) Aliases() []string    { return nil }
func (c *UsersCmd) Synopsis() string     { return "Manage users (admin)" }
func (c *UsersCmd) Usage() string        { return "taskdeck users [role <id> <admin|member>]" }
func (c *UsersCmd) NeedsAuth() bool      { return true }
func (c *UsersCmd) RequiredRole() string { return service.RoleAdmin }

func (c *UsersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UsersCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return c.list(ctx, env, out, errOut)
	}
	if args[0] == "role" {
		if len(args) != 3 {
			fmt.Fprintln(errOut, "error: usage: taskdeck users role <id> <admin|member>")
			return exitcode.UserError
		}
		return c.setRole(ctx, env, args[1], args[2], out, errOut)
	}
	fmt.Fprintf(errOut, "error: unknown subcommand: %s\n", args[0])
	return exitcode.UserError
}

func (c *UsersCmd) list(ctx context.Context, env *Env, out, errOut io.Writer) int {
	users, err := env.Svc.Users(ctx)
	if err != nil {
		return apiError(env, err, errOut)
	}
	for _, u := range users {
		output.FormatUser(out, u)
	}
	return exitcode.Success
}

func (c *UsersCmd) setRole(ctx context.Context, env *Env, id, role string, out, errOut io.Writer) int {
	if role != service.RoleAdmin && role != service.RoleMember {
		fmt.Fprintf(errOut, "error: invalid role: %s\n", role)
		return exitcode.UserError
	}
	u, err := env.Svc.SetUserRole(ctx, id, role)
	if err != nil {
		return apiError(env, err, errOut)
	}
	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "%s is now %s\n", u.Email, u.Role)
	}
	return exitcode.Success
}
