package main

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/oxygene76/linalg/pkg/linalg"
	"github.com/oxygene76/linalg/pkg/utils"
)

const (
	appName = "linalg"
	version = "v1.0.0"
)

// app carries the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	cfgFile      string
	outputFormat string
	logLevel     string

	config *utils.Config
	logger log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{
		config: utils.DefaultConfig(),
		logger: log.NewNopLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Vector and line arithmetic",
		Long: `linalg runs vector arithmetic (sums, products, projections, angles,
areas) and 2D line queries (parallelism, equality, intersection) and prints
the result.

Vectors are written as comma separated decimals, e.g. 1,2.5,-3. Lines are
written as normal=constant, e.g. 1,-1=2 for x_1 - x_2 = 2. Put operands that
start with a minus sign after "--" or wrap them in parentheses: (-1,2).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// config init must work even when the existing config is broken
			if cmd.Name() == "init" {
				return nil
			}
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.linalg/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		vectorCmd(a),
		lineCmd(a),
		demoCmd(a),
		configCmd(a),
	)

	return rootCmd
}

// init loads the configuration, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	config, err := utils.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if a.outputFormat != "" {
		config.Output.Format = a.outputFormat
	}
	if a.logLevel != "" {
		config.Log.Level = a.logLevel
	}
	if err := validateOverrides(config); err != nil {
		return err
	}

	a.config = config
	a.logger, err = newLogger(cmd.ErrOrStderr(), config)
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		"output", config.Output.Format,
		"zero_epsilon", config.Precision.ZeroEpsilon,
		"parallel_tolerance", config.Precision.ParallelTolerance,
	)
	return nil
}

func validateOverrides(config *utils.Config) error {
	switch config.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %q", config.Output.Format)
	}
	if _, err := config.LogLevel(); err != nil {
		return err
	}
	return nil
}

func newLogger(w io.Writer, config *utils.Config) (log.Logger, error) {
	level, err := config.LogLevel()
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(level), log.ColorOption(false)}
	if config.Log.Format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

func (a *app) lineOptions() []linalg.LineOption {
	return []linalg.LineOption{linalg.WithTolerance(a.config.Tolerance())}
}
