package commands

import (
	"github.com/spf13/cobra"

	"fracpoint/internal/app"
)

var (
	logLevel string
	noColor  bool
	appCtx   *app.App
)

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCmd(app.Config{}).Execute()
}

// NewRootCmd builds the command tree. Streams left nil in cfg default to the
// process streams; the log level is taken from --log-level.
func NewRootCmd(cfg app.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "fracpoint",
		Short:        "Unreduced fraction and 2D point calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c := cfg
			c.In = cmd.InOrStdin()
			c.Out = cmd.OutOrStdout()
			c.Err = cmd.ErrOrStderr()
			c.LogLevel = logLevel
			c.NoColor = noColor
			a, err := app.New(c)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	if cfg.In != nil {
		root.SetIn(cfg.In)
	}
	if cfg.Out != nil {
		root.SetOut(cfg.Out)
	}
	if cfg.Err != nil {
		root.SetErr(cfg.Err)
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", app.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured log output")

	root.AddCommand(demoCmd(), fracCmd(), pointCmd())
	return root
}
