// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"mdtask/internal/config"
	"mdtask/internal/improve"
)

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

	// NeedsImprover returns true if the command requires the completion
	// backend. Commands like help, version, config return false.
	NeedsImprover() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, settings, API key).
	// imp is nil if NeedsImprover() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, imp improve.Improver, args []string, out, errOut io.Writer) int
}
