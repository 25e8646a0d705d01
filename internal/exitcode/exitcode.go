// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, no target file).
	UserError = 1

	// ConfigError indicates a configuration error (missing API key, unwritable settings).
	ConfigError = 2

	// BackendError indicates a completion API/network error.
	BackendError = 3

	// WriteError indicates a filesystem failure on the target file.
	WriteError = 4
)
