package domain

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/passvault/internal/validation"
)

// Credentials is the input of a top-level login. It is implemented only by
// PasswordCredentials, SSOCredentials and APIKeyCredentials; callers switch
// on Kind to tell them apart.
type Credentials interface {
	Kind() StrategyKind
	Validate() error
	twoFactor() *TwoFactorInput
}

// PasswordCredentials logs in with email and master password.
type PasswordCredentials struct {
	Email          string
	MasterPassword string
	CaptchaToken   string
	TwoFactor      *TwoFactorInput
}

func (c *PasswordCredentials) Kind() StrategyKind          { return StrategyPassword }
func (c *PasswordCredentials) twoFactor() *TwoFactorInput { return c.TwoFactor }

// Validate checks the email shape and that a password is present.
func (c *PasswordCredentials) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Email, validation.Required, customValidation.NotBlank, customValidation.Email),
		validation.Field(&c.MasterPassword, validation.Required),
	)
	return wrapValidation(err)
}

// SSOCredentials completes an authorization-code exchange.
type SSOCredentials struct {
	Code         string
	CodeVerifier string
	RedirectURL  string
	OrgID        string
	TwoFactor    *TwoFactorInput
}

func (c *SSOCredentials) Kind() StrategyKind          { return StrategySSO }
func (c *SSOCredentials) twoFactor() *TwoFactorInput { return c.TwoFactor }

func (c *SSOCredentials) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Code, validation.Required, customValidation.NotBlank),
		validation.Field(&c.CodeVerifier, validation.Required, customValidation.Base64URL),
		validation.Field(&c.RedirectURL, validation.Required),
	)
	return wrapValidation(err)
}

// APIKeyCredentials logs in with a personal or organization API key.
type APIKeyCredentials struct {
	ClientID     string
	ClientSecret string
	TwoFactor    *TwoFactorInput
}

func (c *APIKeyCredentials) Kind() StrategyKind          { return StrategyAPIKey }
func (c *APIKeyCredentials) twoFactor() *TwoFactorInput { return c.TwoFactor }

func (c *APIKeyCredentials) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ClientID, validation.Required, customValidation.NoWhitespace),
		validation.Field(&c.ClientSecret, validation.Required),
	)
	return wrapValidation(err)
}

// Scope returns the API scope for the client id. Organization machine
// accounts get the organization scope.
func (c *APIKeyCredentials) Scope() string {
	if strings.HasPrefix(c.ClientID, organizationClientPrefix) {
		return ScopeOrganizationAPI
	}
	return ScopeAPI
}

// TwoFactorOf returns the second factor supplied with the credentials, if any.
func TwoFactorOf(c Credentials) *TwoFactorInput {
	return c.twoFactor()
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidCredentials, err.Error())
}
