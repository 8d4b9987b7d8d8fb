// Package mocks provides mock implementations of the vault use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// MockVaultTimeoutUseCase is a mock implementation of usecase.VaultTimeoutUseCase.
type MockVaultTimeoutUseCase struct {
	mock.Mock
}

func (m *MockVaultTimeoutUseCase) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockVaultTimeoutUseCase) Stop() {
	m.Called()
}

func (m *MockVaultTimeoutUseCase) CheckTimeout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVaultTimeoutUseCase) ShouldLock(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVaultTimeoutUseCase) IsLocked(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVaultTimeoutUseCase) Lock(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockVaultTimeoutUseCase) LogOut(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockVaultTimeoutUseCase) SetVaultTimeoutOptions(
	ctx context.Context,
	userID string,
	timeout *int,
	action stateDomain.VaultTimeoutAction,
) error {
	args := m.Called(ctx, userID, timeout, action)
	return args.Error(0)
}

// MockProcessReloadUseCase is a mock implementation of usecase.ProcessReloadUseCase.
type MockProcessReloadUseCase struct {
	mock.Mock
}

func (m *MockProcessReloadUseCase) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessReloadUseCase) Cancel() {
	m.Called()
}

func (m *MockProcessReloadUseCase) Armed() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockViewChecker is a mock implementation of usecase.ViewChecker.
type MockViewChecker struct {
	mock.Mock
}

func (m *MockViewChecker) IsViewOpen(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
