package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/theme"
)

func init() {
	Register(&ThemeCmd{})
}

// ThemeCmd sets or shows the theme preference.
type ThemeCmd struct{}

func (c *ThemeCmd) Name() string         { return "theme" }
func (c *ThemeCmd) Aliases() []string    { return nil }
func (c *ThemeCmd) Synopsis() string     { return "Set the color theme" }
func (c *ThemeCmd) Usage() string        { return "taskdeck theme [light|dark|system]" }
func (c *ThemeCmd) NeedsAuth() bool      { return false }
func (c *ThemeCmd) RequiredRole() string { return "" }

func (c *ThemeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ThemeCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(out, "theme: %s (resolved: %s)\n", env.Theme.Theme(), env.Theme.Resolved())
		return exitcode.Success
	}

	choice := theme.Choice(args[0])
	switch choice {
	case theme.Light, theme.Dark, theme.System:
	default:
		fmt.Fprintf(errOut, "error: unknown theme: %s\n", args[0])
		return exitcode.UserError
	}

	env.Theme.SetTheme(choice)
	if !env.Cfg.Quiet {
		fmt.Fprintf(out, "theme: %s (resolved: %s)\n", env.Theme.Theme(), env.Theme.Resolved())
	}
	return exitcode.Success
}
