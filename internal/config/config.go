package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = time.Hour
	defaultConnMaxIdleTime = 10 * time.Minute
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`    // how long startup keeps retrying the first connection
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// CacheConfig holds in-memory cache configuration
type CacheConfig struct {
	ContractInterfaceTTL time.Duration `mapstructure:"contract_interface_ttl"`
}

// MetricsConfig holds prometheus configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Server            ServerConfig   `mapstructure:"server"`
	DataDatabase      DatabaseConfig `mapstructure:"data_database"`
	StructureDatabase DatabaseConfig `mapstructure:"structure_database"`
	Cache             CacheConfig    `mapstructure:"cache"`
	Metrics           MetricsConfig  `mapstructure:"metrics"`
}

// SeedConfig holds configuration for the seed program
type SeedConfig struct {
	BaseConfig        `mapstructure:",squash"`
	DataDatabase      DatabaseConfig `mapstructure:"data_database"`
	StructureDatabase DatabaseConfig `mapstructure:"structure_database"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v, "data_database")
	setDatabaseDefaults(v, "structure_database")
	v.SetDefault("cache.contract_interface_ttl", "60m")
	v.SetDefault("metrics.enabled", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabases(cfg.DataDatabase, cfg.StructureDatabase); err != nil {
		return nil, err
	}
	cfg.DataDatabase.NormalizeConnectionPoolSettings()
	cfg.StructureDatabase.NormalizeConnectionPoolSettings()

	return &cfg, nil
}

// LoadSeedConfig loads configuration for the seed program
func LoadSeedConfig(configFile string, envPath string) (*SeedConfig, error) {
	v := configureViper("seed", configFile, envPath)

	setDatabaseDefaults(v, "data_database")
	setDatabaseDefaults(v, "structure_database")
	// schema changes need few connections
	v.SetDefault("data_database.max_open_conns", 2)
	v.SetDefault("structure_database.max_open_conns", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SeedConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabases(cfg.DataDatabase, cfg.StructureDatabase); err != nil {
		return nil, err
	}
	cfg.DataDatabase.NormalizeConnectionPoolSettings()
	cfg.StructureDatabase.NormalizeConnectionPoolSettings()

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper, section string) {
	v.SetDefault(section+".port", 5432)
	v.SetDefault(section+".sslmode", "disable")
	v.SetDefault(section+".connect_timeout", "1m")
}

// readConfig reads the config file, a missing file means env only
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func validateDatabases(data, structure DatabaseConfig) error {
	if data.Host == "" {
		return errors.New("data_database.host is required")
	}
	if data.DBName == "" {
		return errors.New("data_database.dbname is required")
	}
	if structure.Host == "" {
		return errors.New("structure_database.host is required")
	}
	if structure.DBName == "" {
		return errors.New("structure_database.dbname is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("LUKSO_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Cache
		"cache.contract_interface_ttl",
		// Metrics
		"metrics.enabled",
	}

	databaseKeys := []string{
		"host",
		"port",
		"read_host",
		"read_port",
		"user",
		"password",
		"dbname",
		"sslmode",
		"max_open_conns",
		"max_idle_conns",
		"conn_max_lifetime",
		"conn_max_idle_time",
		"connect_timeout",
	}
	for _, section := range []string{"data_database", "structure_database"} {
		for _, key := range databaseKeys {
			keys = append(keys, section+"."+key)
		}
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// NormalizeConnectionPoolSettings fills unset pool settings with defaults and caps idle
// connections at the open connection limit
func (c *DatabaseConfig) NormalizeConnectionPoolSettings() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = defaultMaxOpenConns
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = defaultMaxIdleConns
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = defaultConnMaxLifetime
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = defaultConnMaxIdleTime
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read replica connection string, or an empty string when no replica is
// configured. If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	if c.ReadHost == "" {
		return ""
	}

	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
