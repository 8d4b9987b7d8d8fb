// Package domain defines the login strategies, the identity service request
// and response shapes, and the authentication errors.
package domain

// StrategyKind discriminates the three login variants.
type StrategyKind int

const (
	StrategyPassword StrategyKind = iota + 1
	StrategySSO
	StrategyAPIKey
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyPassword:
		return "password"
	case StrategySSO:
		return "sso"
	case StrategyAPIKey:
		return "api_key"
	}
	return "unknown"
}

// GrantType is the OAuth grant sent to the identity token endpoint.
type GrantType string

const (
	GrantPassword          GrantType = "password"
	GrantAuthorizationCode GrantType = "authorization_code"
	GrantClientCredentials GrantType = "client_credentials"
)

// TwoFactorProviderType identifies a second-factor mechanism. The numeric
// values are part of the wire format.
type TwoFactorProviderType int

const (
	TwoFactorAuthenticator   TwoFactorProviderType = 0
	TwoFactorEmail           TwoFactorProviderType = 1
	TwoFactorDuo             TwoFactorProviderType = 2
	TwoFactorYubikey         TwoFactorProviderType = 3
	TwoFactorU2f             TwoFactorProviderType = 4
	TwoFactorRemember        TwoFactorProviderType = 5
	TwoFactorOrganizationDuo TwoFactorProviderType = 6
	TwoFactorWebAuthn        TwoFactorProviderType = 7
)

const (
	// ScopeAPI is requested by user logins and personal API keys.
	ScopeAPI = "api"
	// ScopeOfflineAccess adds a refresh token.
	ScopeOfflineAccess = "offline_access"
	// ScopeOrganizationAPI is requested by organization machine accounts.
	ScopeOrganizationAPI = "api.organization"

	// organizationClientPrefix marks client ids owned by an organization.
	organizationClientPrefix = "organization"
)
