// Package cli parses arguments, assembles the per-invocation environment,
// and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"taskdeck/internal/cache"
	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/guard"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/storage"
	"taskdeck/internal/theme"
)

// ServiceFactory creates a Service from config and the session token.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, token string) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory

	// Signal overrides the environment color-scheme signal. Defaults to
	// the terminal background.
	Signal theme.Signal

	// Store overrides the key/value store. Defaults to files under the
	// config directory.
	Store storage.Store
}

// NewDispatcher creates a new dispatcher with the given registry and
// backend factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "tasks" with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "tasks", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if _, ok := d.registry.Find(cmdName); !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var server string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&server, "server", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(err, errOut)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if server != "" {
		cfg.Server = server
	}
	if debug {
		if logger, err := zap.NewDevelopment(); err == nil {
			cfg.Logger = logger
			defer logger.Sync()
		}
	}

	env, cleanup := d.buildEnv(cfg)
	defer cleanup()

	// Gate the command on the session before touching the backend.
	if cmd.NeedsAuth() {
		requested := strings.TrimSpace(cmdName + " " + strings.Join(args, " "))
		decision := guard.Decide(env.Session.Authenticated(), env.Session.User().Role, cmd.RequiredRole(), requested)
		switch decision.Action {
		case guard.SignIn:
			// Remember what was asked for so login can offer it back.
			_ = env.Store.Set(commands.ReplayKey, decision.From)
			fmt.Fprintln(errOut, "error: not logged in (run: taskdeck login)")
			return exitcode.AuthError
		case guard.Home:
			// Lacking the role lands on the default surface instead.
			fmt.Fprintf(errOut, "%s requires the %s role; showing tasks\n", cmd.Name(), cmd.RequiredRole())
			return d.dispatch(ctx, "tasks", nil, out, errOut)
		}
	}

	if d.factory != nil {
		svc, err := d.factory(ctx, cfg, env.Session.Token())
		if err != nil {
			if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
				fmt.Fprintf(errOut, "error: auth error: %s\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %s\n", err)
			return exitcode.BackendError
		}
		env.Svc = svc
	}

	return cmd.Run(ctx, env, positionalArgs, out, errOut)
}

// buildEnv rehydrates the stores from storage and applies the resolved
// theme. The theme subscription lives until cleanup runs.
func (d *Dispatcher) buildEnv(cfg *config.Config) (*commands.Env, func()) {
	kv := d.Store
	if kv == nil {
		kv = storage.NewFileStore(cfg.Dir)
	}
	signal := d.Signal
	if signal == nil {
		signal = theme.TermSignal{}
	}

	tasks := cache.New[service.TaskPage](cache.DefaultTTL)
	env := &commands.Env{
		Cfg:     cfg,
		Store:   kv,
		Session: session.New(kv, tasks, cfg.Logger),
		Theme:   theme.New(kv, signal, output.Apply, cfg.Logger),
		Tasks:   tasks,
	}
	return env, env.Theme.Close
}

// flagError maps flag-parse failures onto user-facing messages.
func flagError(err error, errOut io.Writer) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		if len(parts) > 0 {
			flagPart := strings.TrimSpace(parts[0])
			flagPart = strings.TrimPrefix(flagPart, "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
