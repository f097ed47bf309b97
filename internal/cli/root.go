package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sallie-oss/sallie/internal/config"
	"github.com/sallie-oss/sallie/internal/event"
	"github.com/sallie-oss/sallie/internal/telemetry"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sallie",
	Short: "Personal assistant with hierarchical memory",
	Long: `sallie - a personal assistant that remembers.

Stores named values under independent hierarchy levels (session, user,
global, ...), tracks tasks and preferences, and persists everything
across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sallie.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("sallie")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// runtime bundles the pieces every subcommand needs.
type runtime struct {
	cfg    *config.Config
	logger *telemetry.Logger
	bus    *event.Bus
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := telemetry.NewLogger(level)
	if cfg.Logging.File != "" {
		if err := logger.WithFile(cfg.Logging.File); err != nil {
			return nil, err
		}
	}

	return &runtime{
		cfg:    cfg,
		logger: logger,
		bus:    config.BuildBus(cfg, logger),
	}, nil
}

func (rt *runtime) close() {
	rt.logger.Close()
}
