package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	"github.com/allisson/passvault/internal/state/repository"
	stateUseCase "github.com/allisson/passvault/internal/state/usecase"
)

// MemoryStorage returns the in-process store.
func (c *Container) MemoryStorage() stateUseCase.StorageService {
	c.memoryStorageInit.Do(func() {
		c.memoryStorage = repository.NewMemoryStorage(c.config.MemoryEnclaveEnabled)
	})
	return c.memoryStorage
}

// DiskStorage returns the persistent store selected by STATE_STORAGE_DRIVER.
func (c *Container) DiskStorage() (stateUseCase.StorageService, error) {
	err := c.lazy(&c.diskStorageInit, "diskStorage", func() (err error) {
		c.diskStorage, err = c.initDiskStorage()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.diskStorage, nil
}

// SecureStorage returns the KMS-sealed store, or nil when no KMS key is
// configured.
func (c *Container) SecureStorage() (stateUseCase.StorageService, error) {
	err := c.lazy(&c.secureStorageInit, "secureStorage", func() (err error) {
		c.secureStorage, err = c.initSecureStorage()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.secureStorage, nil
}

// StateUseCase returns the session state store, loaded from disk.
func (c *Container) StateUseCase() (stateUseCase.StateUseCase, error) {
	err := c.lazy(&c.stateUseCaseInit, "stateUseCase", func() (err error) {
		c.stateUseCase, err = c.initStateUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.stateUseCase, nil
}

// initDiskStorage creates the persistent store based on the storage driver.
func (c *Container) initDiskStorage() (stateUseCase.StorageService, error) {
	switch c.config.StateStorageDriver {
	case "memory":
		return repository.NewMemoryStorage(false), nil
	case "redis":
		client, err := c.RedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis client for disk storage: %w", err)
		}
		return repository.NewRedisStorage(client, c.config.RedisKeyPrefix), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for disk storage: %w", err)
	}

	switch c.config.StateStorageDriver {
	case "sqlite":
		return repository.NewSQLiteStorage(context.Background(), db)
	case "postgres":
		return repository.NewPostgreSQLStorage(db), nil
	case "mysql":
		return repository.NewMySQLStorage(db), nil
	default:
		return nil, fmt.Errorf("unsupported state storage driver: %s", c.config.StateStorageDriver)
	}
}

// initSecureStorage layers KMS sealing over the disk store.
func (c *Container) initSecureStorage() (stateUseCase.StorageService, error) {
	keeper, err := c.Keeper()
	if err != nil {
		return nil, err
	}
	if keeper == nil {
		c.Logger().Info("secure storage disabled, no kms key configured")
		return nil, nil
	}

	disk, err := c.DiskStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get disk storage for secure storage: %w", err)
	}

	algorithm := cryptoDomain.Algorithm(c.config.SecureStorageAlgorithm)
	if algorithm != cryptoDomain.AESGCM && algorithm != cryptoDomain.ChaCha20 {
		return nil, fmt.Errorf("unsupported secure storage algorithm: %s", algorithm)
	}

	return repository.NewSecureStorage(disk, keeper, c.AEADManager(), algorithm), nil
}

// initStateUseCase creates the state store and reloads its accounts.
func (c *Container) initStateUseCase() (stateUseCase.StateUseCase, error) {
	disk, err := c.DiskStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get disk storage for state use case: %w", err)
	}

	secure, err := c.SecureStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get secure storage for state use case: %w", err)
	}

	state := stateUseCase.NewStateUseCase(c.MemoryStorage(), disk, secure, c.StatusBroker(), c.Logger())
	if err := state.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return state, nil
}
