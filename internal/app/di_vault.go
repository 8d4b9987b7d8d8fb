package app

import (
	"fmt"

	vaultUseCase "github.com/allisson/passvault/internal/vault/usecase"
)

// ProcessReloadUseCase returns the reload watchdog, or nil when the host
// provided no reload callback.
func (c *Container) ProcessReloadUseCase() (vaultUseCase.ProcessReloadUseCase, error) {
	err := c.lazy(&c.processReloadUseCaseInit, "processReloadUseCase", func() (err error) {
		c.processReloadUseCase, err = c.initProcessReloadUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.processReloadUseCase, nil
}

// VaultTimeoutUseCase returns the vault timeout.
func (c *Container) VaultTimeoutUseCase() (vaultUseCase.VaultTimeoutUseCase, error) {
	err := c.lazy(&c.vaultTimeoutUseCaseInit, "vaultTimeoutUseCase", func() (err error) {
		c.vaultTimeoutUseCase, err = c.initVaultTimeoutUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.vaultTimeoutUseCase, nil
}

func (c *Container) initProcessReloadUseCase() (vaultUseCase.ProcessReloadUseCase, error) {
	if c.reload == nil {
		return nil, nil
	}

	state, err := c.StateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get state use case for process reload: %w", err)
	}

	return vaultUseCase.NewProcessReloadUseCase(
		c.config.ProcessReloadInterval,
		state,
		c.views,
		c.reload,
		c.Logger(),
	), nil
}

// initVaultTimeoutUseCase creates the vault timeout with all its dependencies.
func (c *Container) initVaultTimeoutUseCase() (vaultUseCase.VaultTimeoutUseCase, error) {
	state, err := c.StateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get state use case for vault timeout: %w", err)
	}

	keys, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for vault timeout: %w", err)
	}

	auth, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for vault timeout: %w", err)
	}

	processReload, err := c.ProcessReloadUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get process reload for vault timeout: %w", err)
	}

	baseUseCase := vaultUseCase.NewVaultTimeoutUseCase(
		vaultUseCase.Config{CheckInterval: c.config.VaultTimeoutCheckInterval},
		state,
		keys,
		auth,
		c.views,
		processReload,
		c.Signals(),
		c.Logger(),
		c.caches...,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for vault timeout: %w", err)
		}
		return vaultUseCase.NewVaultTimeoutUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
