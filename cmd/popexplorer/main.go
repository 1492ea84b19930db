package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"popexplorer/internal/config"
	"popexplorer/internal/dataset"
	"popexplorer/internal/engine"
	"popexplorer/internal/logging"
)

// cfg starts from the environment and is then overridden by flags.
var cfg, cfgErr = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:           "popexplorer",
	Short:         "Query the world population by country table",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		level, _ := cfg.SlogLevel()
		logging.Setup(level)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.DataPath, "data", cfg.DataPath, "path to a tab separated dataset (default: embedded snapshot)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadService reads and parses the configured dataset.
func loadService() (*engine.Service, error) {
	t0 := time.Now()

	raw, err := dataset.Read(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	svc, err := engine.NewServiceFromText(raw)
	if err != nil {
		return nil, err
	}

	source := cfg.DataPath
	if source == "" {
		source = "embedded"
	}
	slog.Debug("dataset ready", "source", source, "countries", svc.Count(), logging.Since(t0))
	return svc, nil
}
