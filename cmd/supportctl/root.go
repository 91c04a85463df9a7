package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"support-router/config"
	"support-router/internal/application"
	"support-router/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:           "supportctl",
	Short:         "Route support queries, replay the example scenarios and manage the schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var flagStorage string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "override storage.driver (memory or postgres)")
	rootCmd.AddCommand(askCmd, scenariosCmd, migrateCmd)
}

// loadConfig reads config.yaml and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flagStorage != "" {
		cfg.Storage.Driver = flagStorage
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

func buildApp(ctx context.Context) (*application.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return application.New(ctx, cfg, newLogger(cfg))
}
