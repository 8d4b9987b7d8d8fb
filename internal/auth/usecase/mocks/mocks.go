// Package mocks provides mock implementations of the login use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) LogIn(ctx context.Context, creds authDomain.Credentials) (*authDomain.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthResult), args.Error(1)
}

func (m *MockAuthUseCase) LogInTwoFactor(
	ctx context.Context,
	twoFactor authDomain.TwoFactorInput,
	captchaToken string,
) (*authDomain.AuthResult, error) {
	args := m.Called(ctx, twoFactor, captchaToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthResult), args.Error(1)
}

func (m *MockAuthUseCase) ClearPending() {
	m.Called()
}

func (m *MockAuthUseCase) HasPending() bool {
	args := m.Called()
	return args.Bool(0)
}

// LogOut mocks the LogOut method; the vault timeout tests use it too.
func (m *MockAuthUseCase) LogOut(ctx context.Context, userID string, expired bool) error {
	args := m.Called(ctx, userID, expired)
	return args.Error(0)
}
