// Package cli parses arguments and dispatches commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mdtask/internal/commands"
	"mdtask/internal/config"
	"mdtask/internal/exitcode"
	"mdtask/internal/improve"
)

// ImproverFactory creates an Improver from config.
// Used to inject the completion backend during dispatch.
type ImproverFactory func(ctx context.Context, cfg *config.Config) (improve.Improver, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ImproverFactory
}

// NewDispatcher creates a new dispatcher with the given registry and improver factory.
func NewDispatcher(registry *commands.Registry, factory ImproverFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> print usage
	if len(args) == 0 {
		return d.dispatch(ctx, "help", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Look up command
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Parse flags
	remaining := args[1:]
	return d.dispatchCommand(ctx, cmd, remaining, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Parse flags
	if err := fs.Parse(args); err != nil {
		// Handle specific error types
		errStr := err.Error()

		// Check for missing flag value
		if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
			// Extract flag name
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

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.APIKey = os.Getenv(config.APIKeyEnv)

	// Pre-flight: a missing key fails before the settings file is
	// read and before any network activity.
	if cmd.NeedsImprover() && strings.TrimSpace(cfg.APIKey) == "" {
		fmt.Fprintf(errOut, "error: %s not set (export it or add it to a .env file)\n", config.APIKeyEnv)
		return exitcode.ConfigError
	}

	// Load persisted settings. A corrupt settings file degrades to
	// empty settings with a warning; it never blocks a command.
	cfg.Settings, err = cfg.LoadSettings()
	if err != nil {
		fmt.Fprintf(errOut, "warning: %v (ignoring saved settings)\n", err)
	}

	if cfg.Debug {
		fmt.Fprintf(errOut, "debug: config dir %s\n", cfg.Dir)
		if cfg.Settings.GlobalFile != "" {
			fmt.Fprintf(errOut, "debug: global file %s\n", cfg.Settings.GlobalFile)
		}
	}

	// Set up the completion backend for commands that need it
	var imp improve.Improver
	if cmd.NeedsImprover() && d.factory != nil {
		imp, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
	}

	// Run command
	return cmd.Run(ctx, cfg, imp, fs.Args(), out, errOut)
}
