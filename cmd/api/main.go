package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lukso-network/lukso-indexer-api/internal/adapter"
	"github.com/lukso-network/lukso-indexer-api/internal/api/server"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/executor"
	"github.com/lukso-network/lukso-indexer-api/internal/cache"
	"github.com/lukso-network/lukso-indexer-api/internal/config"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/metrics"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "lukso-indexer-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting LUKSO Indexer API")

	// Metrics
	m := metrics.New()
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m.Register(registry)
	}

	// Connect to both databases
	dataDB, err := store.Open(ctx, connectOptions("data", cfg.Debug, cfg.DataDatabase), m)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to data database", zap.Error(err), zap.String("host", cfg.DataDatabase.Host))
	}
	defer func() { _ = store.Close(dataDB) }()

	structureDB, err := store.Open(ctx, connectOptions("structure", cfg.Debug, cfg.StructureDatabase), m)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to structure database", zap.Error(err), zap.String("host", cfg.StructureDatabase.Host))
	}
	defer func() { _ = store.Close(structureDB) }()

	logger.InfoCtx(ctx, "Connected to databases",
		zap.Int("data_max_open_conns", cfg.DataDatabase.MaxOpenConns),
		zap.Int("structure_max_open_conns", cfg.StructureDatabase.MaxOpenConns),
		zap.Bool("data_read_replica", cfg.DataDatabase.ReadHost != ""),
		zap.Bool("structure_read_replica", cfg.StructureDatabase.ReadHost != ""),
	)

	// Initialize stores
	interfaces := cache.NewInterfaceCache(cfg.Cache.ContractInterfaceTTL, adapter.NewClock(), m)
	dataStore := store.NewDataStore(dataDB)
	structureStore := store.NewStructureStore(structureDB, interfaces)

	// Create and start server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, executor.NewExecutor(dataStore, structureStore), m, gatherer(registry))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// ctx is canceled by now
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

func connectOptions(name string, debug bool, db config.DatabaseConfig) store.ConnectOptions {
	return store.ConnectOptions{
		Name:            name,
		DSN:             db.DSN(),
		ReadDSN:         db.ReadDSN(),
		Debug:           debug,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		MaxConnectWait:  db.ConnectTimeout,
	}
}

// gatherer avoids handing a typed nil registry to the server
func gatherer(registry *prometheus.Registry) prometheus.Gatherer {
	if registry == nil {
		return nil
	}
	return registry
}
