package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"mdtask/internal/config"
	"mdtask/internal/exitcode"
	"mdtask/internal/improve"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Aliases() []string   { return nil }
func (c *HelpCmd) Synopsis() string    { return "Print usage" }
func (c *HelpCmd) Usage() string       { return "mdtask help" }
func (c *HelpCmd) NeedsImprover() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, imp improve.Improver, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  mdtask create [common flags] [--file <path>] [--timestamp] <text...>
  mdtask add    [common flags] [--file <path>] [--timestamp] <text...>
  mdtask config [common flags] [--global-file <path>] [--model <id>] [--base-url <url>]
  mdtask delete
  mdtask help
  mdtask version

The create command sends the text to the configured completions
endpoint to be rewritten into a concise, actionable task and appends
it as "- [ ] <task>" to the target markdown file.

The OPENROUTER_API_KEY environment variable must be set for create;
a .env file in the working directory is loaded if present.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
