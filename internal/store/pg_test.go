package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/lukso-network/lukso-indexer-api/internal/cache"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/metrics"
)

var (
	testDB      *gorm.DB
	testMetrics *metrics.Metrics
	// testRegistry holds the collectors of testMetrics
	testRegistry *prometheus.Registry
	pgContainer *postgres.PostgresContainer
	// dsnFor returns the DSN of another database on the test server
	dsnFor func(dbName string) string
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsnFor = func(name string) string {
			return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				dbHost, dbPort, dbUser, dbPassword, name)
		}
		dsn = dsnFor(dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			terminateContainer(ctx)
			os.Exit(1)
		}

		base := dsn
		dsnFor = func(name string) string {
			u, err := url.Parse(base)
			if err != nil {
				return base
			}
			u.Path = "/" + name
			return u.String()
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testMetrics = metrics.New()
	testRegistry = prometheus.NewRegistry()
	testMetrics.Register(testRegistry)
	testDB, err = Open(ctx, ConnectOptions{Name: "test", DSN: dsn, MaxConnectWait: 30 * time.Second}, testMetrics)
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	// both stores share the test database
	if err := provisionTestDatabase(ctx, testDB); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = Close(testDB)
	terminateContainer(ctx)

	os.Exit(code)
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

func provisionTestDatabase(ctx context.Context, db *gorm.DB) error {
	for _, target := range []Target{StructureTarget, DataTarget} {
		p, err := NewProvisioner(db, target)
		if err != nil {
			return err
		}
		if err := p.Provision(ctx, false); err != nil {
			return fmt.Errorf("failed to provision %s: %w", target, err)
		}
	}
	return nil
}

// beginTestTx starts a transaction rolled back when the test ends
func beginTestTx(t *testing.T) *gorm.DB {
	t.Helper()
	require.NotNil(t, testDB, "Test database not initialized")

	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// initDataStore returns a data store isolated in a rolled back transaction
func initDataStore(t *testing.T) DataStore {
	return NewDataStore(beginTestTx(t))
}

// initStructureStore returns a structure store isolated in a rolled back transaction,
// with a fresh interface cache
func initStructureStore(t *testing.T) (StructureStore, *gorm.DB, *cache.InterfaceCache) {
	tx := beginTestTx(t)
	c := cache.NewInterfaceCache(time.Hour, nil, testMetrics)
	return NewStructureStore(tx, c), tx, c
}

// createScratchDatabase creates an empty database for tests that drop schema objects
func createScratchDatabase(t *testing.T, name string) *gorm.DB {
	t.Helper()

	require.NoError(t, testDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", name)).Error)
	require.NoError(t, testDB.Exec(fmt.Sprintf("CREATE DATABASE %s", name)).Error)

	db := openScratchDatabase(t, name)

	t.Cleanup(func() {
		_ = testDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", name)).Error
	})

	return db
}

// openScratchDatabase opens a new pool on a scratch database. Statements prepared before a
// schema drop are not reused across pools.
func openScratchDatabase(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := Open(context.Background(), ConnectOptions{Name: strings.ReplaceAll(name, "_", "-"), DSN: dsnFor(name)}, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = Close(db)
	})

	return db
}
