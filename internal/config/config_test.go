package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
  write_timeout: 6
  idle_timeout: 60
data_database:
  host: data-host
  port: 5433
  read_host: data-replica
  user: indexer
  password: secret
  dbname: lukso_data
  sslmode: require
  max_open_conns: 50
  max_idle_conns: 10
  conn_max_lifetime: 30m
  conn_max_idle_time: 5m
structure_database:
  host: structure-host
  user: indexer
  password: secret
  dbname: lukso_structure
cache:
  contract_interface_ttl: 15m
metrics:
  enabled: false
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, 6, cfg.Server.WriteTimeout)
				assert.Equal(t, 60, cfg.Server.IdleTimeout)

				assert.Equal(t, "data-host", cfg.DataDatabase.Host)
				assert.Equal(t, 5433, cfg.DataDatabase.Port)
				assert.Equal(t, "data-replica", cfg.DataDatabase.ReadHost)
				assert.Equal(t, "lukso_data", cfg.DataDatabase.DBName)
				assert.Equal(t, "require", cfg.DataDatabase.SSLMode)
				assert.Equal(t, 50, cfg.DataDatabase.MaxOpenConns)
				assert.Equal(t, 10, cfg.DataDatabase.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.DataDatabase.ConnMaxLifetime)
				assert.Equal(t, 5*time.Minute, cfg.DataDatabase.ConnMaxIdleTime)

				assert.Equal(t, "structure-host", cfg.StructureDatabase.Host)
				assert.Equal(t, 5432, cfg.StructureDatabase.Port) // default
				assert.Empty(t, cfg.StructureDatabase.ReadHost)

				assert.Equal(t, 15*time.Minute, cfg.Cache.ContractInterfaceTTL)
				assert.False(t, cfg.Metrics.Enabled)
			},
		},
		{
			name: "config with defaults",
			configFile: `
data_database:
  host: localhost
  dbname: data
structure_database:
  host: localhost
  dbname: structure
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, 60*time.Minute, cfg.Cache.ContractInterfaceTTL)
				assert.True(t, cfg.Metrics.Enabled)

				for _, db := range []DatabaseConfig{cfg.DataDatabase, cfg.StructureDatabase} {
					assert.Equal(t, 5432, db.Port)
					assert.Equal(t, "disable", db.SSLMode)
					assert.Equal(t, time.Minute, db.ConnectTimeout)
					assert.Equal(t, defaultMaxOpenConns, db.MaxOpenConns)
					assert.Equal(t, defaultMaxIdleConns, db.MaxIdleConns)
					assert.Equal(t, defaultConnMaxLifetime, db.ConnMaxLifetime)
					assert.Equal(t, defaultConnMaxIdleTime, db.ConnMaxIdleTime)
				}
			},
		},
		{
			name: "missing structure database",
			configFile: `
data_database:
  host: localhost
  dbname: data
`,
			expectError: true,
		},
		{
			name: "missing data database name",
			configFile: `
data_database:
  host: localhost
structure_database:
  host: localhost
  dbname: structure
`,
			expectError: true,
		},
		{
			name:        "malformed yaml",
			configFile:  "data_database: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSeedConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SeedConfig)
	}{
		{
			name: "seed uses a small pool",
			configFile: `
debug: true
data_database:
  host: localhost
  dbname: data
structure_database:
  host: localhost
  dbname: structure
  max_open_conns: 4
`,
			validate: func(t *testing.T, cfg *SeedConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, 2, cfg.DataDatabase.MaxOpenConns)
				assert.Equal(t, 2, cfg.DataDatabase.MaxIdleConns, "idle connections are capped at the open limit")
				assert.Equal(t, 4, cfg.StructureDatabase.MaxOpenConns)
				assert.Equal(t, 4, cfg.StructureDatabase.MaxIdleConns)
			},
		},
		{
			name: "missing data database",
			configFile: `
structure_database:
  host: localhost
  dbname: structure
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSeedConfig(writeConfigFile(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
		readDSN  string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
			readDSN:  "",
		},
		{
			name: "read replica on the primary port",
			config: DatabaseConfig{
				Host:     "primary",
				Port:     5432,
				ReadHost: "replica",
				User:     "user",
				Password: "p@ssw0rd!",
				DBName:   "db",
				SSLMode:  "disable",
			},
			expected: "host=primary port=5432 user=user password=p@ssw0rd! dbname=db sslmode=disable",
			readDSN:  "host=replica port=5432 user=user password=p@ssw0rd! dbname=db sslmode=disable",
		},
		{
			name: "read replica on its own port",
			config: DatabaseConfig{
				Host:     "primary",
				Port:     5432,
				ReadHost: "replica",
				ReadPort: 6432,
				User:     "user",
				Password: "pass",
				DBName:   "db",
				SSLMode:  "disable",
			},
			expected: "host=primary port=5432 user=user password=pass dbname=db sslmode=disable",
			readDSN:  "host=replica port=6432 user=user password=pass dbname=db sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
			assert.Equal(t, tt.readDSN, tt.config.ReadDSN())
		})
	}
}

func TestDatabaseConfig_NormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected DatabaseConfig
	}{
		{
			name:   "all unset",
			config: DatabaseConfig{},
			expected: DatabaseConfig{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
				ConnMaxIdleTime: defaultConnMaxIdleTime,
			},
		},
		{
			name: "explicit values are kept",
			config: DatabaseConfig{
				MaxOpenConns:    40,
				MaxIdleConns:    8,
				ConnMaxLifetime: time.Minute,
				ConnMaxIdleTime: time.Second,
			},
			expected: DatabaseConfig{
				MaxOpenConns:    40,
				MaxIdleConns:    8,
				ConnMaxLifetime: time.Minute,
				ConnMaxIdleTime: time.Second,
			},
		},
		{
			name:   "idle capped at open",
			config: DatabaseConfig{MaxOpenConns: 3, MaxIdleConns: 10},
			expected: DatabaseConfig{
				MaxOpenConns:    3,
				MaxIdleConns:    3,
				ConnMaxLifetime: defaultConnMaxLifetime,
				ConnMaxIdleTime: defaultConnMaxIdleTime,
			},
		},
		{
			name:   "negative values",
			config: DatabaseConfig{MaxOpenConns: -1, MaxIdleConns: -1, ConnMaxLifetime: -time.Second},
			expected: DatabaseConfig{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
				ConnMaxIdleTime: defaultConnMaxIdleTime,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.NormalizeConnectionPoolSettings()
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// godotenv.Overload sets process variables, they are removed when the test ends
	envVars := map[string]string{
		"LUKSO_INDEXER_DEBUG":                        "true",
		"LUKSO_INDEXER_DATA_DATABASE_HOST":           "env-host",
		"LUKSO_INDEXER_DATA_DATABASE_PORT":           "6543",
		"LUKSO_INDEXER_DATA_DATABASE_USER":           "env-user",
		"LUKSO_INDEXER_DATA_DATABASE_PASSWORD":       "env-pass",
		"LUKSO_INDEXER_DATA_DATABASE_DBNAME":         "env-db",
		"LUKSO_INDEXER_CACHE_CONTRACT_INTERFACE_TTL": "5m",
	}
	envContent := ""
	for key, value := range envVars {
		envContent += key + "=" + value + "\n"
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))

	// a service local file overrides the shared one
	t.Cleanup(func() { _ = os.Unsetenv("LUKSO_INDEXER_DATA_DATABASE_SSLMODE") })
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.api.local"),
		[]byte("LUKSO_INDEXER_DATA_DATABASE_SSLMODE=verify-full\n"), 0600))

	configPath := writeConfigFile(t, `
debug: false
data_database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
structure_database:
  host: file-host
  dbname: structure
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.DataDatabase.Host)
	assert.Equal(t, 6543, cfg.DataDatabase.Port)
	assert.Equal(t, "env-user", cfg.DataDatabase.User)
	assert.Equal(t, "env-pass", cfg.DataDatabase.Password)
	assert.Equal(t, "env-db", cfg.DataDatabase.DBName)
	assert.Equal(t, "verify-full", cfg.DataDatabase.SSLMode)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ContractInterfaceTTL)

	// untouched by env
	assert.Equal(t, "file-host", cfg.StructureDatabase.Host)
}

func TestConfigWithoutFile(t *testing.T) {
	t.Setenv("LUKSO_INDEXER_DATA_DATABASE_HOST", "data-host")
	t.Setenv("LUKSO_INDEXER_DATA_DATABASE_DBNAME", "data")
	t.Setenv("LUKSO_INDEXER_STRUCTURE_DATABASE_HOST", "structure-host")
	t.Setenv("LUKSO_INDEXER_STRUCTURE_DATABASE_DBNAME", "structure")
	t.Setenv("LUKSO_INDEXER_SERVER_PORT", "9000")

	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data-host", cfg.DataDatabase.Host)
	assert.Equal(t, "structure-host", cfg.StructureDatabase.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
}
