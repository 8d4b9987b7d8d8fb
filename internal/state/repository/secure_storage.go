package repository

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
)

const (
	secureKeyPrefix = "secure_"
	secureDEKKey    = "secure_storage_dek"
	secureDEKSize   = 32
)

// byteStore is the persistence contract SecureStorage layers on.
type byteStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}

// SecureStorage seals values with a data key that only the KMS keeper can
// unwrap, then writes them to an ordinary backend.
//
// The data key is generated on first use and stored keeper-wrapped under
// secure_storage_dek. Each value is bound to its storage key through the AEAD
// additional data, so a sealed blob cannot be replayed under another key.
type SecureStorage struct {
	backend     byteStore
	keeper      cryptoDomain.KMSKeeper
	aeadManager cryptoService.AEADManager
	algorithm   cryptoDomain.Algorithm

	mu     sync.Mutex
	dek    []byte
	cipher cryptoService.AEAD
}

// NewSecureStorage creates a SecureStorage over backend.
func NewSecureStorage(
	backend byteStore,
	keeper cryptoDomain.KMSKeeper,
	aeadManager cryptoService.AEADManager,
	algorithm cryptoDomain.Algorithm,
) *SecureStorage {
	return &SecureStorage{
		backend:     backend,
		keeper:      keeper,
		aeadManager: aeadManager,
		algorithm:   algorithm,
	}
}

// loadCipher unwraps (or creates) the data key and builds the AEAD once.
func (s *SecureStorage) loadCipher(ctx context.Context) (cryptoService.AEAD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cipher != nil {
		return s.cipher, nil
	}

	wrapped, found, err := s.backend.Get(ctx, secureDEKKey)
	if err != nil {
		return nil, err
	}

	var dek []byte
	if found {
		dek, err = s.keeper.Decrypt(ctx, wrapped)
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap secure storage key: %w", err)
		}
	} else {
		dek = make([]byte, secureDEKSize)
		if _, err := rand.Read(dek); err != nil {
			return nil, fmt.Errorf("failed to generate secure storage key: %w", err)
		}
		wrapped, err := s.keeper.Encrypt(ctx, dek)
		if err != nil {
			cryptoDomain.Zero(dek)
			return nil, fmt.Errorf("failed to wrap secure storage key: %w", err)
		}
		if err := s.backend.Save(ctx, secureDEKKey, wrapped); err != nil {
			cryptoDomain.Zero(dek)
			return nil, err
		}
	}

	aead, err := s.aeadManager.CreateCipher(dek, s.algorithm)
	if err != nil {
		cryptoDomain.Zero(dek)
		return nil, err
	}

	s.dek = dek
	s.cipher = aead
	return aead, nil
}

func (s *SecureStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sealed, found, err := s.backend.Get(ctx, secureKeyPrefix+key)
	if err != nil || !found {
		return nil, found, err
	}

	aead, err := s.loadCipher(ctx)
	if err != nil {
		return nil, false, err
	}

	value, err := aead.Open(sealed, []byte(key))
	if err != nil {
		return nil, false, fmt.Errorf("failed to open secure value: %w", err)
	}
	return value, true, nil
}

func (s *SecureStorage) Save(ctx context.Context, key string, value []byte) error {
	aead, err := s.loadCipher(ctx)
	if err != nil {
		return err
	}

	sealed, err := aead.Seal(value, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal secure value: %w", err)
	}
	return s.backend.Save(ctx, secureKeyPrefix+key, sealed)
}

func (s *SecureStorage) Remove(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = secureKeyPrefix + key
	}
	return s.backend.Remove(ctx, prefixed...)
}

// Close wipes the cached data key and closes the keeper.
func (s *SecureStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cryptoDomain.Zero(s.dek)
	s.dek = nil
	s.cipher = nil
	return s.keeper.Close()
}
