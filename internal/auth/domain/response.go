package domain

// PreloginResponse carries the KDF an account declares.
type PreloginResponse struct {
	Kdf           int
	KdfIterations *int
}

// IdentityResponse is the decoded token endpoint response. At most one of
// its three shapes is meaningful; Classify picks it.
type IdentityResponse struct {
	// captcha challenge
	SiteKey string

	// two-factor challenge
	TwoFactorProviders map[TwoFactorProviderType]map[string]any
	CaptchaBypassToken string

	// token
	Token *TokenResponse
}

// ResponseKind is the classification of an IdentityResponse.
type ResponseKind int

const (
	ResponseToken ResponseKind = iota
	ResponseCaptcha
	ResponseTwoFactor
)

// Classify applies the priority order captcha, then two-factor, then token.
func (r *IdentityResponse) Classify() ResponseKind {
	switch {
	case r.SiteKey != "":
		return ResponseCaptcha
	case len(r.TwoFactorProviders) > 0:
		return ResponseTwoFactor
	}
	return ResponseToken
}

// TokenResponse is a successful login.
type TokenResponse struct {
	AccessToken         string
	RefreshToken        string
	Key                 string
	PrivateKey          string
	Kdf                 int
	KdfIterations       *int
	ForcePasswordReset  bool
	ResetMasterPassword bool
	APIUseKeyConnector  bool
	KeyConnectorURL     string
	// TwoFactorToken is the remember token issued when the caller asked to
	// remember the second factor.
	TwoFactorToken string
}

// AuthResult is what a login attempt reports back to the caller.
type AuthResult struct {
	UserID              string
	CaptchaSiteKey      string
	TwoFactorProviders  map[TwoFactorProviderType]map[string]any
	ForcePasswordReset  bool
	ResetMasterPassword bool
}

// TwoFactorRequired reports whether the login is pending a second factor.
func (r *AuthResult) TwoFactorRequired() bool {
	return len(r.TwoFactorProviders) > 0
}

// RequiresCaptcha reports whether the caller must solve a captcha and log in again.
func (r *AuthResult) RequiresCaptcha() bool {
	return r.CaptchaSiteKey != ""
}
