package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/config"
)

var (
	configFile string                  // Path to the config file, ./config.yaml when empty
	logLevel   string                  // Log verbosity level, overrides log_level from the config
	cfg        *config.SchedulerConfig // Loaded before any subcommand runs
)

// NewRootCommand builds the CLI with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cpu-scheduler",
		Short:         "Discrete-time CPU scheduling simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFile)
			if err != nil {
				return err
			}
			level := loaded.LogLevel
			if cmd.Flags().Changed("log") {
				level = logLevel
			}
			parsed, err := logrus.ParseLevel(level)
			if err != nil {
				return errors.Wrapf(err, "invalid log level %q", level)
			}
			logrus.SetLevel(parsed)
			cfg = loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newServeCommand())
	return rootCmd
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
