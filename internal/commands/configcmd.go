package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"mdtask/internal/config"
	"mdtask/internal/exitcode"
	"mdtask/internal/improve"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd implements the config command.
type ConfigCmd struct {
	globalFile string
	model      string
	baseURL    string
}

// SetGlobalFile sets the global file path (for testing).
func (c *ConfigCmd) SetGlobalFile(path string) {
	c.globalFile = path
}

// SetModel sets the model override (for testing).
func (c *ConfigCmd) SetModel(model string) {
	c.model = model
}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Set persisted defaults" }
func (c *ConfigCmd) Usage() string {
	return "mdtask config [--global-file <path>] [--model <id>] [--base-url <url>]"
}
func (c *ConfigCmd) NeedsImprover() bool { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.globalFile, "global-file", "", "")
	fs.StringVar(&c.model, "model", "", "")
	fs.StringVar(&c.baseURL, "base-url", "", "")
}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, imp improve.Improver, args []string, out, errOut io.Writer) int {
	globalFile := strings.TrimSpace(c.globalFile)
	model := strings.TrimSpace(c.model)
	baseURL := strings.TrimSpace(c.baseURL)

	if globalFile == "" && model == "" && baseURL == "" {
		fmt.Fprintln(errOut, "error: nothing to set")
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	// Update only the values given; a corrupt existing file was already
	// degraded to empty settings with a warning at dispatch.
	settings := cfg.Settings
	if globalFile != "" {
		settings.GlobalFile = globalFile
	}
	if model != "" {
		settings.Model = model
	}
	if baseURL != "" {
		settings.BaseURL = baseURL
	}

	if err := cfg.SaveSettings(settings); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if !cfg.Quiet {
		if globalFile != "" {
			fmt.Fprintf(out, "global file set to %s\n", globalFile)
		}
		if model != "" {
			fmt.Fprintf(out, "model set to %s\n", model)
		}
		if baseURL != "" {
			fmt.Fprintf(out, "base URL set to %s\n", baseURL)
		}
	}
	return exitcode.Success
}
