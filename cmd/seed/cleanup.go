package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukso-network/lukso-indexer-api/internal/config"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

func cleanupCommand(cfg func() *config.SeedConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every row of the selected stores, keeping the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseTargets(globalFlags.targets)
			if err != nil {
				return err
			}

			return runTargets(cmd.Context(), cfg(), targets, func(ctx context.Context, p *store.Provisioner) error {
				if err := p.Cleanup(ctx); err != nil {
					return err
				}
				logger.InfoCtx(ctx, "Cleaned up store", zap.Strings("tables", p.Tables()))
				return nil
			})
		},
	}
}
