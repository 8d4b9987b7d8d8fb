// Package mocks provides testify mocks for the login collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
)

// MockIdentityAPI is a mock implementation of service.IdentityAPI.
type MockIdentityAPI struct {
	mock.Mock
}

func (m *MockIdentityAPI) PreLogin(ctx context.Context, email string) (*authDomain.PreloginResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.PreloginResponse), args.Error(1)
}

func (m *MockIdentityAPI) PostIdentityToken(
	ctx context.Context,
	req *authDomain.TokenRequest,
) (*authDomain.IdentityResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IdentityResponse), args.Error(1)
}

func (m *MockIdentityAPI) PostAccountKeys(ctx context.Context, accessToken string, req authDomain.KeysRequest) error {
	args := m.Called(ctx, accessToken, req)
	return args.Error(0)
}

func (m *MockIdentityAPI) PostSetKeyConnectorKey(
	ctx context.Context,
	accessToken string,
	req authDomain.SetKeyConnectorKeyRequest,
) error {
	args := m.Called(ctx, accessToken, req)
	return args.Error(0)
}

// MockKeyConnectorAPI is a mock implementation of service.KeyConnectorAPI.
type MockKeyConnectorAPI struct {
	mock.Mock
}

func (m *MockKeyConnectorAPI) GetUserKey(ctx context.Context, url, accessToken string) (string, error) {
	args := m.Called(ctx, url, accessToken)
	return args.String(0), args.Error(1)
}

func (m *MockKeyConnectorAPI) PostUserKey(ctx context.Context, url, accessToken, key string) error {
	args := m.Called(ctx, url, accessToken, key)
	return args.Error(0)
}
