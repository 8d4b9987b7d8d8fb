package app

import (
	"fmt"

	authService "github.com/allisson/passvault/internal/auth/service"
	authUseCase "github.com/allisson/passvault/internal/auth/usecase"
)

// TokenService returns the access token decoder.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService()
	})
	return c.tokenService
}

// AuthUseCase returns the login flow. It requires an identity API option.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	err := c.lazy(&c.authUseCaseInit, "authUseCase", func() (err error) {
		c.authUseCase, err = c.initAuthUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.authUseCase, nil
}

// initAuthUseCase creates the login flow with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	if c.identityAPI == nil {
		return nil, ErrIdentityAPINotConfigured
	}

	state, err := c.StateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get state use case for auth use case: %w", err)
	}

	keys, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(
		state,
		keys,
		c.KdfService(),
		c.KeyManager(),
		c.identityAPI,
		c.keyConnectorAPI,
		c.TokenService(),
		c.Signals(),
		authUseCase.Options{
			ClientID:        c.config.ClientID,
			DeviceType:      c.config.DeviceType,
			DeviceName:      c.config.DeviceName,
			KeyConnectorURL: c.config.KeyConnectorURL,
		},
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
