// Package domain defines the session state model: the finite set of state
// fields, where each one may live, and the account records built from them.
package domain

import "strings"

// Field identifies one logical piece of session state.
type Field int

// Scope tells whether a field belongs to one account or to the whole process.
type Scope int

const (
	ScopeAccount Scope = iota
	ScopeGlobal
)

// FieldPolicy is the static storage policy of a field.
//
// Secure fields are persisted only through the hardware-backed secure
// storage; a caller can request secure storage for any field but can never
// downgrade a secure field to plain disk.
type FieldPolicy struct {
	Name     string
	Scope    Scope
	Location Location
	Secure   bool
}

const (
	FieldProfile Field = iota + 1
	FieldTokens
	FieldApiKeyClientID
	FieldApiKeyClientSecret
	FieldMasterKey
	FieldStoredMasterKey
	FieldKeyHash
	FieldEncryptedEncKey
	FieldDecryptedEncKey
	FieldEncryptedPrivateKey
	FieldDecryptedPrivateKey
	FieldPublicKey
	FieldEncryptedOrganizationKeys
	FieldDecryptedOrganizationKeys
	FieldEncryptedProviderKeys
	FieldDecryptedProviderKeys
	FieldEncryptedPinProtected
	FieldDecryptedPinProtected
	FieldProtectedPin
	FieldEverBeenUnlocked
	FieldBiometricLocked
	FieldBiometricUnlock
	FieldVaultTimeout
	FieldVaultTimeoutAction
	FieldLastActive
	FieldForcePasswordReset
	FieldConvertAccountToKeyConnector
	FieldUsesKeyConnector

	FieldAppID
	FieldTheme
	FieldLocale
	FieldRememberedEmail
	FieldTwoFactorTokens
)

// policies is the single place where storage placement is decided.
// Decrypted key material is memory-only; its wrapped forms live on disk.
var policies = map[Field]FieldPolicy{
	FieldProfile:                      {Name: "profile", Scope: ScopeAccount, Location: LocationDisk},
	FieldTokens:                       {Name: "tokens", Scope: ScopeAccount, Location: LocationDisk},
	FieldApiKeyClientID:               {Name: "apiKeyClientId", Scope: ScopeAccount, Location: LocationDisk},
	FieldApiKeyClientSecret:           {Name: "apiKeyClientSecret", Scope: ScopeAccount, Location: LocationMemory},
	FieldMasterKey:                    {Name: "cryptoMasterKey", Scope: ScopeAccount, Location: LocationMemory},
	FieldStoredMasterKey:              {Name: "masterKey", Scope: ScopeAccount, Location: LocationDisk, Secure: true},
	FieldKeyHash:                      {Name: "keyHash", Scope: ScopeAccount, Location: LocationBoth},
	FieldEncryptedEncKey:              {Name: "encryptedCryptoSymmetricKey", Scope: ScopeAccount, Location: LocationDisk},
	FieldDecryptedEncKey:              {Name: "decryptedCryptoSymmetricKey", Scope: ScopeAccount, Location: LocationMemory},
	FieldEncryptedPrivateKey:          {Name: "encryptedPrivateKey", Scope: ScopeAccount, Location: LocationDisk},
	FieldDecryptedPrivateKey:          {Name: "decryptedPrivateKey", Scope: ScopeAccount, Location: LocationMemory},
	FieldPublicKey:                    {Name: "publicKey", Scope: ScopeAccount, Location: LocationMemory},
	FieldEncryptedOrganizationKeys:    {Name: "encryptedOrganizationKeys", Scope: ScopeAccount, Location: LocationDisk},
	FieldDecryptedOrganizationKeys:    {Name: "decryptedOrganizationKeys", Scope: ScopeAccount, Location: LocationMemory},
	FieldEncryptedProviderKeys:        {Name: "encryptedProviderKeys", Scope: ScopeAccount, Location: LocationDisk},
	FieldDecryptedProviderKeys:        {Name: "decryptedProviderKeys", Scope: ScopeAccount, Location: LocationMemory},
	FieldEncryptedPinProtected:        {Name: "encryptedPinProtected", Scope: ScopeAccount, Location: LocationDisk},
	FieldDecryptedPinProtected:        {Name: "decryptedPinProtected", Scope: ScopeAccount, Location: LocationMemory},
	FieldProtectedPin:                 {Name: "protectedPin", Scope: ScopeAccount, Location: LocationDisk},
	FieldEverBeenUnlocked:             {Name: "everBeenUnlocked", Scope: ScopeAccount, Location: LocationMemory},
	FieldBiometricLocked:              {Name: "biometricLocked", Scope: ScopeAccount, Location: LocationMemory},
	FieldBiometricUnlock:              {Name: "biometricUnlock", Scope: ScopeAccount, Location: LocationDisk},
	FieldVaultTimeout:                 {Name: "vaultTimeout", Scope: ScopeAccount, Location: LocationDisk},
	FieldVaultTimeoutAction:           {Name: "vaultTimeoutAction", Scope: ScopeAccount, Location: LocationDisk},
	FieldLastActive:                   {Name: "lastActive", Scope: ScopeAccount, Location: LocationDisk},
	FieldForcePasswordReset:           {Name: "forcePasswordReset", Scope: ScopeAccount, Location: LocationDisk},
	FieldConvertAccountToKeyConnector: {Name: "convertAccountToKeyConnector", Scope: ScopeAccount, Location: LocationDisk},
	FieldUsesKeyConnector:             {Name: "usesKeyConnector", Scope: ScopeAccount, Location: LocationDisk},

	FieldAppID:           {Name: "appId", Scope: ScopeGlobal, Location: LocationDisk},
	FieldTheme:           {Name: "theme", Scope: ScopeGlobal, Location: LocationDisk},
	FieldLocale:          {Name: "locale", Scope: ScopeGlobal, Location: LocationDisk},
	FieldRememberedEmail: {Name: "rememberedEmail", Scope: ScopeGlobal, Location: LocationDisk},
	FieldTwoFactorTokens: {Name: "twoFactorTokens", Scope: ScopeGlobal, Location: LocationDisk},
}

// Policy returns the static policy of f.
func (f Field) Policy() (FieldPolicy, error) {
	p, ok := policies[f]
	if !ok {
		return FieldPolicy{}, ErrUnknownField
	}
	return p, nil
}

func (f Field) String() string {
	if p, ok := policies[f]; ok {
		return p.Name
	}
	return "unknown"
}

// AccountFields lists every account-scoped field, in declaration order.
func AccountFields() []Field {
	var out []Field
	for f := FieldProfile; f <= FieldUsesKeyConnector; f++ {
		out = append(out, f)
	}
	return out
}

const (
	// AuthenticatedAccountsKey holds the ordered list of known user ids.
	AuthenticatedAccountsKey = "authenticatedAccounts"
	// ActiveUserIDKey holds the active user id.
	ActiveUserIDKey = "activeUserId"

	// GlobalScope is the storage key prefix and lock scope of global fields.
	GlobalScope = "global"
)

// StorageKey builds the backing-store key for a field.
//
// Account fields map to "<userId>_<name>[_<suffix>]" and global fields to
// "global_<name>".
func StorageKey(p FieldPolicy, userID string, suffix KeySuffix) string {
	parts := make([]string, 0, 3)
	if p.Scope == ScopeGlobal {
		parts = append(parts, GlobalScope, p.Name)
	} else {
		parts = append(parts, userID, p.Name)
	}
	if suffix != KeySuffixNone {
		parts = append(parts, string(suffix))
	}
	return strings.Join(parts, "_")
}
