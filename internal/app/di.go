// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"

	authService "github.com/allisson/passvault/internal/auth/service"
	authUseCase "github.com/allisson/passvault/internal/auth/usecase"
	"github.com/allisson/passvault/internal/config"
	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
	cryptoUseCase "github.com/allisson/passvault/internal/crypto/usecase"
	"github.com/allisson/passvault/internal/database"
	"github.com/allisson/passvault/internal/messaging"
	"github.com/allisson/passvault/internal/metrics"
	stateUseCase "github.com/allisson/passvault/internal/state/usecase"
	vaultUseCase "github.com/allisson/passvault/internal/vault/usecase"
)

// ErrIdentityAPINotConfigured is returned when a component needing the
// identity server is requested from a container built without one.
var ErrIdentityAPINotConfigured = errors.New("identity api not configured")

// ErrMetricsDisabled is returned by MetricsHandler when METRICS_ENABLED is false.
var ErrMetricsDisabled = errors.New("metrics disabled")

// Option customizes the collaborators the host application provides.
type Option func(*Container)

// WithIdentityAPI sets the identity server client used by the login flow.
func WithIdentityAPI(api authService.IdentityAPI) Option {
	return func(c *Container) { c.identityAPI = api }
}

// WithKeyConnectorAPI sets the key connector client.
func WithKeyConnectorAPI(api authService.KeyConnectorAPI) Option {
	return func(c *Container) { c.keyConnectorAPI = api }
}

// WithViewChecker sets the foreground view probe used by the vault timers.
func WithViewChecker(views vaultUseCase.ViewChecker) Option {
	return func(c *Container) { c.views = views }
}

// WithReloadFunc sets the callback that restarts the host process.
func WithReloadFunc(reload vaultUseCase.ReloadFunc) Option {
	return func(c *Container) { c.reload = reload }
}

// WithCacheClearers registers caches dropped on every vault lock.
func WithCacheClearers(caches ...vaultUseCase.CacheClearer) Option {
	return func(c *Container) { c.caches = append(c.caches, caches...) }
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Host collaborators
	identityAPI     authService.IdentityAPI
	keyConnectorAPI authService.KeyConnectorAPI
	views           vaultUseCase.ViewChecker
	reload          vaultUseCase.ReloadFunc
	caches          []vaultUseCase.CacheClearer

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	redisClient     *redis.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	signals         *messaging.Broker[messaging.Signal]
	statusBroker    *messaging.Broker[stateUseCase.StatusSnapshot]

	// Crypto
	kdfService  cryptoService.KdfService
	envelope    cryptoService.EnvelopeService
	keyManager  cryptoService.KeyManager
	aeadManager cryptoService.AEADManager
	kmsService  cryptoService.KMSService
	keeper      cryptoDomain.KMSKeeper
	keyUseCase  cryptoUseCase.KeyUseCase

	// State
	memoryStorage stateUseCase.StorageService
	diskStorage   stateUseCase.StorageService
	secureStorage stateUseCase.StorageService
	stateUseCase  stateUseCase.StateUseCase

	// Auth
	tokenService authService.TokenService
	authUseCase  authUseCase.AuthUseCase

	// Vault
	processReloadUseCase vaultUseCase.ProcessReloadUseCase
	vaultTimeoutUseCase  vaultUseCase.VaultTimeoutUseCase

	// Initialization flags and mutex for thread-safety
	mu                       sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	redisClientInit          sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	signalsInit              sync.Once
	statusBrokerInit         sync.Once
	kdfServiceInit           sync.Once
	envelopeInit             sync.Once
	keyManagerInit           sync.Once
	aeadManagerInit          sync.Once
	kmsServiceInit           sync.Once
	keeperInit               sync.Once
	keyUseCaseInit           sync.Once
	memoryStorageInit        sync.Once
	diskStorageInit          sync.Once
	secureStorageInit        sync.Once
	stateUseCaseInit         sync.Once
	tokenServiceInit         sync.Once
	authUseCaseInit          sync.Once
	processReloadUseCaseInit sync.Once
	vaultTimeoutUseCaseInit  sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...Option) *Container {
	c := &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// lazy runs init once under name and replays its error on later calls.
func (c *Container) lazy(once *sync.Once, name string, init func() error) error {
	once.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[name] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// DB returns the database connection of the SQL state backend.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	err := c.lazy(&c.dbInit, "db", func() (err error) {
		c.db, err = c.initDB()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// RedisClient returns the Redis client of the redis state backend.
func (c *Container) RedisClient() (*redis.Client, error) {
	err := c.lazy(&c.redisClientInit, "redisClient", func() (err error) {
		c.redisClient, err = c.initRedisClient()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.redisClient, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.lazy(&c.metricsProviderInit, "metricsProvider", func() (err error) {
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op one when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.lazy(&c.businessMetricsInit, "businessMetrics", func() (err error) {
		c.businessMetrics, err = c.initBusinessMetrics()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// MetricsHandler returns the Prometheus exposition handler for the host to
// mount on its own server. It fails with ErrMetricsDisabled when metrics are off.
func (c *Container) MetricsHandler() (http.Handler, error) {
	if !c.config.MetricsEnabled {
		return nil, ErrMetricsDisabled
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	return provider.Handler(), nil
}

// Signals returns the broker carrying session signals (loggedIn, locked,
// unlocked, loggedOut).
func (c *Container) Signals() *messaging.Broker[messaging.Signal] {
	c.signalsInit.Do(func() {
		c.signals = messaging.NewBroker[messaging.Signal]()
	})
	return c.signals
}

// StatusBroker returns the broker carrying account status snapshots.
func (c *Container) StatusBroker() *messaging.Broker[stateUseCase.StatusSnapshot] {
	c.statusBrokerInit.Do(func() {
		c.statusBroker = messaging.NewBroker[stateUseCase.StatusSnapshot]()
	})
	return c.statusBroker
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Stop periodic tasks before their dependencies go away
	if c.vaultTimeoutUseCase != nil {
		c.vaultTimeoutUseCase.Stop()
	}
	if c.processReloadUseCase != nil {
		c.processReloadUseCase.Cancel()
	}

	if c.signals != nil {
		c.signals.Close()
	}
	if c.statusBroker != nil {
		c.statusBroker.Close()
	}

	if c.keeper != nil {
		if err := c.keeper.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("kms keeper close: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	driver := c.config.StateDatabaseDriver()
	if driver == "" {
		return nil, fmt.Errorf("state storage driver %q is not backed by a database", c.config.StateStorageDriver)
	}

	db, err := database.Connect(database.Config{
		Driver:             driver,
		ConnectionString:   c.config.StateDatabaseDSN(),
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initRedisClient creates the Redis client and checks the connection.
func (c *Container) initRedisClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
		DB:       c.config.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}
