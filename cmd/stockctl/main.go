package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tair/stockwatch/internal/inventory"
	"github.com/tair/stockwatch/pkg/config"
	"github.com/tair/stockwatch/pkg/logger"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stockctl",
		Short: "Inspect stock levels and reorder alerts",
		Long: `stockctl reads the same storage as the stockwatch service and prints
each item's stock outlook for today, seeds sample data, or follows the
reorder alert stream.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "directory containing config.yaml")

	root.AddCommand(reportCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(alertsCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.ServiceName+"-cli", cfg.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)
	return cfg, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*inventory.Storage, error) {
	store, err := inventory.OpenStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}
