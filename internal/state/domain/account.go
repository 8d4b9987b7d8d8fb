package domain

// Account is the persisted identity of one authenticated user.
//
// Keys and settings are stored as individual fields next to it; Account only
// carries what is known at login time.
type Account struct {
	Profile AccountProfile
	Tokens  AccountTokens
}

// AccountProfile holds the claims decoded from the access token plus KDF settings.
type AccountProfile struct {
	UserID        string `cbor:"1,keyasint"`
	Email         string `cbor:"2,keyasint"`
	Name          string `cbor:"3,keyasint,omitempty"`
	EmailVerified bool   `cbor:"4,keyasint"`
	HasPremium    bool   `cbor:"5,keyasint"`
	KdfType       int    `cbor:"6,keyasint"`
	KdfIterations *int   `cbor:"7,keyasint,omitempty"`
	SecurityStamp string `cbor:"8,keyasint,omitempty"`
}

// AccountTokens holds the identity service tokens.
type AccountTokens struct {
	AccessToken  string `cbor:"1,keyasint"`
	RefreshToken string `cbor:"2,keyasint,omitempty"`
}

// Merge returns t overlaid with the non-empty values of other.
func (t AccountTokens) Merge(other AccountTokens) AccountTokens {
	if other.AccessToken != "" {
		t.AccessToken = other.AccessToken
	}
	if other.RefreshToken != "" {
		t.RefreshToken = other.RefreshToken
	}
	return t
}

// EncryptedOrganizationKey is a stored organization key.
//
// User-wrapped keys are RSA envelopes to the user's public key. Keys are
// always stored user-wrapped; ProviderID records where a re-wrapped key came from.
type EncryptedOrganizationKey struct {
	Key        string `cbor:"1,keyasint"`
	ProviderID string `cbor:"2,keyasint,omitempty"`
}

// AuthenticationStatus is the derived per-account lock state.
type AuthenticationStatus int

const (
	AuthenticationStatusLocked AuthenticationStatus = iota
	AuthenticationStatusUnlocked
	AuthenticationStatusActive
)

func (s AuthenticationStatus) String() string {
	switch s {
	case AuthenticationStatusActive:
		return "active"
	case AuthenticationStatusUnlocked:
		return "unlocked"
	}
	return "locked"
}

// VaultTimeoutAction selects what happens when the vault timeout elapses.
type VaultTimeoutAction string

const (
	VaultTimeoutActionLock   VaultTimeoutAction = "lock"
	VaultTimeoutActionLogOut VaultTimeoutAction = "logOut"
)
