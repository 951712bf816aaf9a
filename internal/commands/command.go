// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskdeck/internal/cache"
	"taskdeck/internal/config"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/storage"
	"taskdeck/internal/theme"
)

// Env bundles the per-invocation state every command may touch. The
// dispatcher builds it once per run: stores are rehydrated from storage,
// the theme is resolved and applied, and the service carries the session's
// token.
type Env struct {
	Cfg     *config.Config
	Store   storage.Store
	Session *session.Store
	Theme   *theme.Store
	Svc     service.Service
	Tasks   *cache.Cache[service.TaskPage]
}

// ReplayKey is the storage key under which the dispatcher remembers a
// command that was denied for lack of authentication, so login can offer
// it back.
const ReplayKey = "replay-command"

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a session.
	// Commands like help, version, theme, login, logout return false.
	NeedsAuth() bool

	// RequiredRole returns the role the session's user must hold, or ""
	// for any authenticated user. Only meaningful when NeedsAuth is true.
	RequiredRole() string

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env is always provided; env.Svc is nil if no backend factory was
	// configured. args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
