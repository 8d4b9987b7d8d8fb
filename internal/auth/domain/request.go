package domain

import (
	"encoding/base64"
	"net/url"
	"strconv"
)

// AuthEmailHeader carries the base64url email alongside password token requests.
const AuthEmailHeader = "Auth-Email"

// Device identifies the client installation to the identity service.
type Device struct {
	Type       int
	Name       string
	Identifier string
}

// TwoFactorInput is the second factor attached to a token request.
type TwoFactorInput struct {
	Provider TwoFactorProviderType
	Token    string
	Remember bool
}

// TokenRequest is the body of a POST to the identity token endpoint.
//
// A pending login keeps its TokenRequest; the two-factor continuation
// mutates TwoFactor and CaptchaToken on that same value and resubmits it.
type TokenRequest struct {
	GrantType GrantType
	Scope     string
	ClientID  string

	// password grant
	Email              string
	MasterPasswordHash string

	// authorization_code grant
	Code         string
	CodeVerifier string
	RedirectURI  string

	// client_credentials grant
	ClientSecret string

	CaptchaToken string
	Device       Device
	TwoFactor    *TwoFactorInput
}

// Form encodes the request as the identity endpoint's form body.
func (r *TokenRequest) Form() url.Values {
	form := url.Values{}
	form.Set("grant_type", string(r.GrantType))
	form.Set("scope", r.Scope)
	form.Set("client_id", r.ClientID)

	switch r.GrantType {
	case GrantPassword:
		form.Set("username", r.Email)
		form.Set("password", r.MasterPasswordHash)
	case GrantAuthorizationCode:
		form.Set("code", r.Code)
		form.Set("code_verifier", r.CodeVerifier)
		form.Set("redirect_uri", r.RedirectURI)
	case GrantClientCredentials:
		form.Set("client_secret", r.ClientSecret)
	}

	if r.Device.Identifier != "" {
		form.Set("deviceType", strconv.Itoa(r.Device.Type))
		form.Set("deviceIdentifier", r.Device.Identifier)
		form.Set("deviceName", r.Device.Name)
	}

	if r.TwoFactor != nil && r.TwoFactor.Token != "" {
		form.Set("twoFactorToken", r.TwoFactor.Token)
		form.Set("twoFactorProvider", strconv.Itoa(int(r.TwoFactor.Provider)))
		remember := "0"
		if r.TwoFactor.Remember {
			remember = "1"
		}
		form.Set("twoFactorRemember", remember)
	}

	if r.CaptchaToken != "" {
		form.Set("captchaResponse", r.CaptchaToken)
	}
	return form
}

// Headers returns the extra headers the request must carry.
func (r *TokenRequest) Headers() map[string]string {
	if r.GrantType != GrantPassword {
		return nil
	}
	return map[string]string{
		AuthEmailHeader: base64.RawURLEncoding.EncodeToString([]byte(r.Email)),
	}
}

// KeysRequest uploads a generated RSA key pair.
type KeysRequest struct {
	PublicKey           string
	EncryptedPrivateKey string
}

// SetKeyConnectorKeyRequest enrolls a new SSO user into key connector custody.
type SetKeyConnectorKeyRequest struct {
	Key           string
	Keys          KeysRequest
	Kdf           int
	KdfIterations *int
	OrgIdentifier string
}
