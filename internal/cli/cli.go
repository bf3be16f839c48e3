package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Delfictus/Prism-Tuning/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// CLI owns the command tree and the writers commands print to.
type CLI struct {
	outW io.Writer
	errW io.Writer
	app  *app.App

	root         string
	baseConfig   string
	overridePath string
	logLevel     string
	logFormat    string
}

// New returns a CLI printing command output to outW and diagnostics to errW.
func New(outW, errW io.Writer) *CLI {
	return &CLI{outW: outW, errW: errW}
}

// Run executes the command tree against args.
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(c.outW)
	root.SetErr(c.errW)
	return root.ExecuteContext(ctx)
}

func (c *CLI) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prism",
		Short: "Configuration and log tooling for long graph-coloring solver runs",
		Long: "prism composes the layered solver configuration (base config plus\n" +
			"persisted overrides plus per-experiment override files) and distills\n" +
			"solver progress logs into queryable summaries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.NewConfig(app.Config{
				Root:         c.root,
				BaseConfig:   c.baseConfig,
				OverridePath: c.overridePath,
				LogFormat:    c.logFormat,
				LogLevel:     c.logLevel,
			})
			if err != nil {
				return err
			}
			c.app = app.New(c.errW, cfg)
			cmd.SetContext(c.app.Context(cmd.Context()))
			return nil
		},
	}

	c.bindGlobalFlags(root.PersistentFlags())

	root.AddCommand(c.configCmd(), c.experimentCmd(), c.logsCmd(), c.summarizeCmd())
	return root
}

// bindGlobalFlags registers the flags shared by every subcommand.
func (c *CLI) bindGlobalFlags(pf *pflag.FlagSet) {
	pf.StringVar(&c.root, "root", ".", "Workspace root containing configs/, overrides/ and results/.")
	pf.StringVar(&c.baseConfig, "base-config", "", "Base config layer (default <root>/"+app.DefaultBaseConfig+").")
	pf.StringVar(&c.overridePath, "override", "", "Global override layer (default <root>/configs/global_hyper.toml).")
	pf.StringVar(&c.logLevel, "log-level", "info", "Logging level: debug, info, warn or error.")
	pf.StringVar(&c.logFormat, "log-format", "text", "Log output format: text or json.")
}
