package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string         { return "help" }
func (c *HelpCmd) Aliases() []string    { return nil }
func (c *HelpCmd) Synopsis() string     { return "Print usage" }
func (c *HelpCmd) Usage() string        { return "taskdeck help" }
func (c *HelpCmd) NeedsAuth() bool      { return false }
func (c *HelpCmd) RequiredRole() string { return "" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskdeck                                           List tasks (saved filters)
  taskdeck tasks [filter flags] [--page <n>] [--limit <n>] [--sort <field:dir>] [--clear]
  taskdeck add [--priority <p>] [--due <date>] [--tags <a,b>] <title...>
  taskdeck show [--activity] <id>
  taskdeck done <id>
  taskdeck edit [--title <t>] [--status <s>] [--priority <p>] <id>
  taskdeck rm <id>
  taskdeck stats
  taskdeck users [role <id> <admin|member>]
  taskdeck login --email <email> --password <password>
  taskdeck register --name <name> --email <email> --password <password>
  taskdeck logout
  taskdeck whoami
  taskdeck theme [light|dark|system]
  taskdeck help
  taskdeck version

Filter flags:
  --status <s>     todo, in-progress or completed
  --priority <p>   low, medium, high or urgent
  --search <text>  Match in the title
  --assignee <id>  Assigned user
  --owner <id>     Owning user
  --due-from <d>   Due on or after date
  --due-to <d>     Due on or before date
  --tags <a,b>     Any of the given tags

Common flags:
  --config <dir>   Override config directory
  --server <url>   Override task server URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
