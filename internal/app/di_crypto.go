package app

import (
	"context"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
	cryptoUseCase "github.com/allisson/passvault/internal/crypto/usecase"
)

// KdfService returns the key derivation service.
func (c *Container) KdfService() cryptoService.KdfService {
	c.kdfServiceInit.Do(func() {
		c.kdfService = cryptoService.NewKdfService()
	})
	return c.kdfService
}

// EnvelopeService returns the EncString envelope service.
func (c *Container) EnvelopeService() cryptoService.EnvelopeService {
	c.envelopeInit.Do(func() {
		c.envelope = cryptoService.NewEnvelopeService(c.KdfService(), rand.Reader)
	})
	return c.envelope
}

// KeyManager returns the key manager service.
func (c *Container) KeyManager() cryptoService.KeyManager {
	c.keyManagerInit.Do(func() {
		c.keyManager = cryptoService.NewKeyManager(c.EnvelopeService(), c.KdfService(), rand.Reader)
	})
	return c.keyManager
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager(rand.Reader)
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// Keeper returns the KMS keeper protecting secure storage. It returns nil
// when no KMS key is configured.
func (c *Container) Keeper() (cryptoDomain.KMSKeeper, error) {
	err := c.lazy(&c.keeperInit, "keeper", func() (err error) {
		c.keeper, err = c.initKeeper()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.keeper, nil
}

// KeyUseCase returns the key hierarchy manager.
func (c *Container) KeyUseCase() (cryptoUseCase.KeyUseCase, error) {
	err := c.lazy(&c.keyUseCaseInit, "keyUseCase", func() (err error) {
		c.keyUseCase, err = c.initKeyUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.keyUseCase, nil
}

// initKeeper opens the KMS keeper named by the configuration.
func (c *Container) initKeeper() (cryptoDomain.KMSKeeper, error) {
	if c.config.SecureStorageKMSKeyURI == "" {
		return nil, nil
	}
	keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.SecureStorageKMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open secure storage keeper: %w", err)
	}
	return keeper, nil
}

// initKeyUseCase creates the key hierarchy manager with all its dependencies.
func (c *Container) initKeyUseCase() (cryptoUseCase.KeyUseCase, error) {
	state, err := c.StateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get state use case for key use case: %w", err)
	}

	return cryptoUseCase.NewKeyUseCase(
		state,
		c.EnvelopeService(),
		c.KdfService(),
		c.KeyManager(),
		c.Logger(),
	), nil
}
