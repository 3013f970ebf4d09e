package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/lukso-network/lukso-indexer-api/internal/config"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
)

const programName = "seed"

var globalFlags = struct {
	configFile string
	envPath    string
	targets    []string
}{}

func main() {
	var cfg *config.SeedConfig

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Provision the data and structure databases of the LUKSO indexer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.ChdirRepoRoot()

			var err error
			cfg, err = config.LoadSeedConfig(globalFlags.configFile, globalFlags.envPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return logger.Initialize(logger.Config{
				Debug:           cfg.Debug,
				SentryDSN:       cfg.SentryDSN,
				BreadcrumbLevel: zapcore.InfoLevel,
				Tags: map[string]string{
					"service": "lukso-indexer-seed",
				},
			})
		},
	}

	rootCmd.PersistentFlags().
		StringVar(&globalFlags.configFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.envPath, "env", "config/", "path to environment files")
	rootCmd.PersistentFlags().
		StringSliceVarP(&globalFlags.targets, "target", "t", []string{"data", "structure"}, "stores to operate on")

	loaded := func() *config.SeedConfig { return cfg }
	rootCmd.AddCommand(provisionCommand(loaded))
	rootCmd.AddCommand(cleanupCommand(loaded))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Flush(2 * time.Second)

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(1)
	}
}
