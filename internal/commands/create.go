package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"mdtask/internal/config"
	"mdtask/internal/exitcode"
	"mdtask/internal/improve"
	"mdtask/internal/output"
	"mdtask/internal/taskfile"
)

func init() {
	Register(&CreateCmd{})
}

// CreateCmd implements the create command.
type CreateCmd struct {
	file      string
	timestamp bool
	now       func() time.Time
}

// SetFile sets the target file override (for testing).
func (c *CreateCmd) SetFile(path string) {
	c.file = path
}

// SetTimestamp enables the timestamp suffix (for testing).
func (c *CreateCmd) SetTimestamp(enabled bool) {
	c.timestamp = enabled
}

// SetNow sets the clock used for the timestamp suffix (for testing).
func (c *CreateCmd) SetNow(now func() time.Time) {
	c.now = now
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return []string{"add"} }
func (c *CreateCmd) Synopsis() string  { return "Improve a task via the LLM and append it" }
func (c *CreateCmd) Usage() string {
	return "mdtask create [--file <path>] [--timestamp] <text...>"
}
func (c *CreateCmd) NeedsImprover() bool { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
	fs.BoolVar(&c.timestamp, "timestamp", false, "")
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, imp improve.Improver, args []string, out, errOut io.Writer) int {
	// Check for task text
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	raw := strings.Join(args, " ")
	if strings.TrimSpace(raw) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	// Resolve target path: explicit --file wins, else the configured default.
	// The override is never persisted.
	path := c.file
	if path == "" {
		path = cfg.Settings.GlobalFile
	}
	if path == "" {
		fmt.Fprintln(errOut, "error: no target file configured")
		fmt.Fprintln(errOut, "specify one with --file <path>, or set a default with: mdtask config --global-file <path>")
		return exitcode.UserError
	}

	improved, err := imp.ImproveTask(ctx, raw)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	line := output.FormatTaskLine(improved)
	if c.timestamp {
		now := c.now
		if now == nil {
			now = time.Now
		}
		line = output.FormatTaskLineTimestamped(improved, now())
	}

	if err := taskfile.Append(path, line); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.WriteError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added to %s\n", path)
		fmt.Fprintln(out, line)
	}
	return exitcode.Success
}
