package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// command carries the state shared by every subcommand of one invocation.
type command struct {
	loader Loader
	opts   Options
	app    *App
}

// NewRootCommand builds the glowup command tree. The loader runs once, before
// the selected subcommand.
func NewRootCommand(loader Loader) *cobra.Command {
	c := &command{loader: loader}

	root := &cobra.Command{
		Use:   "glowup",
		Short: "GlowUp Wallet in your terminal",
		Long: "Track savings goals, spending and challenges, and ask the GlowUp Guide for advice.\n" +
			"Without DATABASE_URL every run starts from the seed, so changes are not kept.",
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
		RunE:              c.runSummary,
	}

	root.PersistentFlags().StringVarP(&c.opts.Theme, "theme", "t", "", "Theme: 'Clean Girl', 'Y2K' or 'Dark Academia'")
	root.PersistentFlags().StringVarP(&c.opts.SeedPath, "seed", "s", "", "TOML seed file (defaults to the sample ledger)")

	root.AddCommand(
		c.summaryCommand(),
		c.goalsCommand(),
		c.addFundsCommand(),
		c.breakdownCommand(),
		c.tipCommand(),
		c.askCommand(),
		c.themesCommand(),
		c.exportCommand(),
	)

	return root
}

func (c *command) load(cmd *cobra.Command, _ []string) error {
	if c.app != nil {
		return nil
	}
	app, err := c.loader(cmd.Context(), c.opts)
	if err != nil {
		return err
	}
	if app == nil {
		return errors.New("loader returned no app")
	}
	c.app = app
	return nil
}

// theme returns the flag value, falling back to the configured theme.
func (c *command) theme() string {
	if c.opts.Theme != "" {
		return c.opts.Theme
	}
	return c.app.Theme
}
