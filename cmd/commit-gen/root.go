package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rafaeelricco/commit-gen/options"
)

// app holds what PersistentPreRunE resolves for the subcommands.
type app struct {
	configFile string
	verbose    bool

	logger *zap.Logger
	opts   options.ParsingOptions
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "commit-gen",
		Short:         "Validate command payloads against commit-gen request types",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: .commit-gen.yaml in the working or home directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every execution step")
	root.PersistentFlags().Bool(flagFillMissingOptionals, false, "bind absent optional fields to null")

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newTypesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	if a.opts, err = parsingOptions(cfg); err != nil {
		return err
	}

	if a.logger == nil {
		if a.logger, err = newLogger(a.verbose); err != nil {
			return err
		}
	}

	a.logger.Debug("Configuration loaded",
		zap.String("file", cfg.ConfigFileUsed()),
		zap.Bool("fill_missing_optionals", a.opts.FillMissingOptionals))

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
