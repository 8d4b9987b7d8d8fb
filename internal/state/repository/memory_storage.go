// Package repository implements the backing stores of the session state:
// in-process memory, SQL databases, Redis and the KMS-sealed secure storage.
//
// Every store speaks the same byte-oriented contract (Get/Save/Remove by
// storage key); encoding and the location policy live in the state use case.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// MemoryStorage keeps values in process memory.
//
// With enclaves enabled each value is sealed in a memguard.Enclave, so key
// material is encrypted at rest in RAM and only decrypted for the duration
// of a Get.
type MemoryStorage struct {
	mu       sync.RWMutex
	enclaves map[string]*memguard.Enclave
	plain    map[string][]byte
	useGuard bool
}

// NewMemoryStorage creates a MemoryStorage; useEnclave selects memguard sealing.
func NewMemoryStorage(useEnclave bool) *MemoryStorage {
	return &MemoryStorage{
		enclaves: make(map[string]*memguard.Enclave),
		plain:    make(map[string][]byte),
		useGuard: useEnclave,
	}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.useGuard {
		v, ok := m.plain[key]
		if !ok {
			return nil, false, nil
		}
		return append([]byte(nil), v...), true, nil
	}

	enclave, ok := m.enclaves[key]
	if !ok {
		return nil, false, nil
	}
	if enclave == nil {
		return []byte{}, true, nil
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, false, fmt.Errorf("failed to open memory enclave: %w", err)
	}
	defer buf.Destroy()

	return append([]byte(nil), buf.Bytes()...), true, nil
}

func (m *MemoryStorage) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.useGuard {
		m.plain[key] = append([]byte(nil), value...)
		return nil
	}

	// NewEnclave wipes its input; seal a copy. An empty value yields a nil enclave.
	m.enclaves[key] = memguard.NewEnclave(append([]byte(nil), value...))
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.enclaves, key)
		if v, ok := m.plain[key]; ok {
			clear(v)
			delete(m.plain, key)
		}
	}
	return nil
}

// Len returns the number of stored values.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.enclaves) + len(m.plain)
}
