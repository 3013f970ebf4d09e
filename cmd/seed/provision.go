package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukso-network/lukso-indexer-api/internal/config"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

func provisionCommand(cfg func() *config.SeedConfig) *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the types, tables and indexes of the selected stores",
		Long: `Create the types, tables and indexes of the selected stores.
Existing objects are kept unless --drop is given. The structure store is seeded with its default config row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseTargets(globalFlags.targets)
			if err != nil {
				return err
			}

			return runTargets(cmd.Context(), cfg(), targets, func(ctx context.Context, p *store.Provisioner) error {
				if err := p.Provision(ctx, drop); err != nil {
					return err
				}
				logger.InfoCtx(ctx, "Provisioned store", zap.Strings("tables", p.Tables()), zap.Bool("dropped", drop))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "drop every table and type of the store first")

	return cmd
}
