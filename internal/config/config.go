// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// StateStorageDriver selects the persistent state backend
	// ("memory", "sqlite", "postgres", "mysql" or "redis").
	StateStorageDriver string
	// StateSQLitePath is the SQLite database file used by the "sqlite" driver.
	StateSQLitePath string

	// DBConnectionString is the connection string for the postgres and mysql drivers.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// RedisAddr is the address of the Redis server.
	RedisAddr string
	// RedisPassword is the Redis password.
	RedisPassword string
	// RedisDB is the Redis logical database.
	RedisDB int
	// RedisKeyPrefix namespaces every state key stored in Redis.
	RedisKeyPrefix string

	// SecureStorageKMSKeyURI is the KMS key wrapping secure storage data keys.
	// Secure storage is unavailable when empty.
	SecureStorageKMSKeyURI string
	// SecureStorageAlgorithm is the AEAD sealing secure values ("aes-gcm" or "chacha20-poly1305").
	SecureStorageAlgorithm string

	// MemoryEnclaveEnabled seals in-process values inside memguard enclaves.
	MemoryEnclaveEnabled bool

	// VaultTimeoutCheckInterval is how often the vault timeout is evaluated.
	VaultTimeoutCheckInterval time.Duration
	// ProcessReloadInterval is how often the reload watchdog checks for idleness.
	ProcessReloadInterval time.Duration

	// ClientID identifies this client to the identity server.
	ClientID string
	// DeviceType is the numeric device type sent with token requests.
	DeviceType int
	// DeviceName is the device name sent with token requests.
	DeviceName string
	// KeyConnectorURL is the fallback key connector when the server names none.
	KeyConnectorURL string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// State storage
		StateStorageDriver: env.GetString("STATE_STORAGE_DRIVER", "sqlite"),
		StateSQLitePath:    env.GetString("STATE_SQLITE_PATH", "passvault.db"),

		// Database configuration
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", ""),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Redis
		RedisAddr:      env.GetString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  env.GetString("REDIS_PASSWORD", ""),
		RedisDB:        env.GetInt("REDIS_DB", 0),
		RedisKeyPrefix: env.GetString("REDIS_KEY_PREFIX", "passvault"),

		// Secure storage
		SecureStorageKMSKeyURI: env.GetString("SECURE_STORAGE_KMS_KEY_URI", ""),
		SecureStorageAlgorithm: env.GetString("SECURE_STORAGE_ALGORITHM", "aes-gcm"),
		MemoryEnclaveEnabled:   env.GetBool("MEMORY_ENCLAVE_ENABLED", true),

		// Timers
		VaultTimeoutCheckInterval: env.GetDuration("VAULT_TIMEOUT_CHECK_INTERVAL", 10, time.Second),
		ProcessReloadInterval:     env.GetDuration("PROCESS_RELOAD_INTERVAL", 10, time.Second),

		// Identity client
		ClientID:        env.GetString("CLIENT_ID", "desktop"),
		DeviceType:      env.GetInt("DEVICE_TYPE", 7),
		DeviceName:      env.GetString("DEVICE_NAME", "linux"),
		KeyConnectorURL: env.GetString("KEY_CONNECTOR_URL", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "passvault"),
	}
}

// StateDatabaseDriver returns the database/sql driver behind the state
// backend, or "" when the backend is not SQL.
func (c *Config) StateDatabaseDriver() string {
	switch c.StateStorageDriver {
	case "sqlite", "postgres", "mysql":
		return c.StateStorageDriver
	default:
		return ""
	}
}

// StateDatabaseDSN returns the connection string of the SQL state backend.
func (c *Config) StateDatabaseDSN() string {
	if c.StateStorageDriver == "sqlite" {
		return c.StateSQLitePath
	}
	return c.DBConnectionString
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
