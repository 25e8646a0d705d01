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
	Register(&DeleteCmd{})
}

// DeleteCmd is a placeholder; removing a task would require rewriting
// the markdown file, and the file is append-only.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string        { return "delete" }
func (c *DeleteCmd) Aliases() []string   { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string    { return "Delete a task (not implemented)" }
func (c *DeleteCmd) Usage() string       { return "mdtask delete" }
func (c *DeleteCmd) NeedsImprover() bool { return false }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, imp improve.Improver, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(errOut, "error: delete is not implemented; edit the task file directly")
	return exitcode.UserError
}
