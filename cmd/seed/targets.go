package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lukso-network/lukso-indexer-api/internal/config"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

// targetFunc is run once per selected store with an open connection
type targetFunc func(ctx context.Context, p *store.Provisioner) error

// parseTargets validates the --target values and removes duplicates
func parseTargets(values []string) ([]store.Target, error) {
	if len(values) == 0 {
		return nil, errors.New("at least one target is required")
	}

	seen := make(map[store.Target]bool, len(values))
	targets := make([]store.Target, 0, len(values))
	for _, v := range values {
		t, err := store.ParseTarget(v)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		targets = append(targets, t)
	}
	return targets, nil
}

// runTargets runs fn against every target in parallel, one connection per target
func runTargets(ctx context.Context, cfg *config.SeedConfig, targets []store.Target, fn targetFunc) error {
	pool := pond.NewPool(len(targets), pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, target := range targets {
		group.SubmitErr(func() error {
			if err := runTarget(ctx, cfg, target, fn); err != nil {
				return fmt.Errorf("%s: %w", target, err)
			}
			return nil
		})
	}

	return group.Wait()
}

func runTarget(ctx context.Context, cfg *config.SeedConfig, target store.Target, fn targetFunc) error {
	db, err := store.Open(ctx, connectOptions(target, cfg), nil)
	if err != nil {
		return err
	}
	defer closeDB(ctx, target, db)

	p, err := store.NewProvisioner(db, target)
	if err != nil {
		return err
	}

	return fn(ctx, p)
}

func connectOptions(target store.Target, cfg *config.SeedConfig) store.ConnectOptions {
	db := cfg.DataDatabase
	if target == store.StructureTarget {
		db = cfg.StructureDatabase
	}

	// DDL always goes to the primary, so no read replica here
	return store.ConnectOptions{
		Name:            string(target),
		DSN:             db.DSN(),
		Debug:           cfg.Debug,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		MaxConnectWait:  db.ConnectTimeout,
	}
}

func closeDB(ctx context.Context, target store.Target, db *gorm.DB) {
	if err := store.Close(db); err != nil {
		logger.WarnCtx(ctx, "Failed to close database", zap.String("target", string(target)), zap.Error(err))
	}
}
