package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
	apperrors "github.com/allisson/passvault/internal/errors"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
	stateUsecase "github.com/allisson/passvault/internal/state/usecase"
)

type keyUseCase struct {
	state      stateUsecase.StateUseCase
	envelope   cryptoService.EnvelopeService
	kdf        cryptoService.KdfService
	keyManager cryptoService.KeyManager
	logger     *slog.Logger
	group      singleflight.Group
}

// NewKeyUseCase creates the key hierarchy manager on top of the session state store.
func NewKeyUseCase(
	state stateUsecase.StateUseCase,
	envelope cryptoService.EnvelopeService,
	kdf cryptoService.KdfService,
	keyManager cryptoService.KeyManager,
	logger *slog.Logger,
) KeyUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &keyUseCase{
		state:      state,
		envelope:   envelope,
		kdf:        kdf,
		keyManager: keyManager,
		logger:     logger,
	}
}

func (k *keyUseCase) resolveUser(userID string) (string, error) {
	if userID == "" {
		userID = k.state.ActiveUserID()
	}
	if userID == "" {
		return "", stateDomain.ErrNoActiveAccount
	}
	return userID, nil
}

// isCryptoFailure reports errors caused by bad key material rather than storage.
func isCryptoFailure(err error) bool {
	return apperrors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, cryptoDomain.ErrKeyUnresolved)
}

// shared runs fn once per key for all concurrent callers. fn is detached from
// the cancellation of whichever caller started it; each caller still stops
// waiting when its own ctx is done.
func (k *keyUseCase) shared(
	ctx context.Context,
	key string,
	fn func(ctx context.Context) (any, error),
) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	detached := context.WithoutCancel(ctx)
	ch := k.group.DoChan(key, func() (any, error) {
		return fn(detached)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func cloneKey(key *cryptoDomain.SymmetricKey) (*cryptoDomain.SymmetricKey, error) {
	raw := key.Key()
	defer cryptoDomain.Zero(raw)
	return cryptoDomain.NewSymmetricKeyWithType(raw, key.EncType())
}

func cloneKeys(keys map[string]*cryptoDomain.SymmetricKey) (map[string]*cryptoDomain.SymmetricKey, error) {
	out := make(map[string]*cryptoDomain.SymmetricKey, len(keys))
	for id, key := range keys {
		c, err := cloneKey(key)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}

func (k *keyUseCase) decryptString(value string, key *cryptoDomain.SymmetricKey) ([]byte, error) {
	enc, err := cryptoDomain.ParseEncString(value)
	if err != nil {
		return nil, err
	}
	return k.envelope.Decrypt(enc, key)
}

func (k *keyUseCase) SetKey(ctx context.Context, key *cryptoDomain.SymmetricKey, userID string) error {
	if key == nil {
		return cryptoDomain.ErrKeyUnresolved
	}
	userID, err := k.resolveUser(userID)
	if err != nil {
		return err
	}
	opts := stateDomain.ForUser(userID)

	raw := key.Key()
	defer cryptoDomain.Zero(raw)

	if err := k.state.Set(ctx, stateDomain.FieldMasterKey, raw, opts); err != nil {
		return err
	}
	return k.storeKey(ctx, raw, userID)
}

// storeKey refreshes the auto and biometric copies of the master key.
func (k *keyUseCase) storeKey(ctx context.Context, raw []byte, userID string) error {
	if !k.state.HasSecureStorage() {
		k.logger.Debug("secure storage unavailable, master key kept in memory only", slog.String("user_id", userID))
		return nil
	}
	opts := stateDomain.ForUser(userID)

	_, hasTimeout, err := stateUsecase.GetValue[int](ctx, k.state, stateDomain.FieldVaultTimeout, opts)
	if err != nil {
		return err
	}
	biometric, _, err := stateUsecase.GetValue[bool](ctx, k.state, stateDomain.FieldBiometricUnlock, opts)
	if err != nil {
		return err
	}

	wanted := map[stateDomain.KeySuffix]bool{
		stateDomain.KeySuffixAuto:      !hasTimeout,
		stateDomain.KeySuffixBiometric: biometric,
	}
	for suffix, store := range wanted {
		suffixOpts := opts.WithKeySuffix(suffix)
		if store {
			err = k.state.Set(ctx, stateDomain.FieldStoredMasterKey, raw, suffixOpts)
		} else {
			err = k.state.Remove(ctx, stateDomain.FieldStoredMasterKey, suffixOpts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (k *keyUseCase) GetKey(
	ctx context.Context,
	suffix stateDomain.KeySuffix,
	userID string,
) (*cryptoDomain.SymmetricKey, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	opts := stateDomain.ForUser(userID)

	raw, found, err := stateUsecase.GetValue[[]byte](ctx, k.state, stateDomain.FieldMasterKey, opts)
	if err != nil {
		return nil, err
	}
	if found {
		defer cryptoDomain.Zero(raw)
		return cryptoDomain.NewSymmetricKey(raw)
	}

	if suffix == stateDomain.KeySuffixNone || !k.state.HasSecureStorage() {
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	suffixOpts := opts.WithKeySuffix(suffix)
	stored, found, err := stateUsecase.GetValue[[]byte](ctx, k.state, stateDomain.FieldStoredMasterKey, suffixOpts)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, cryptoDomain.ErrKeyUnresolved
	}
	defer cryptoDomain.Zero(stored)

	key, err := cryptoDomain.NewSymmetricKey(stored)
	if err != nil {
		return nil, err
	}

	valid, err := k.ValidateKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if !valid {
		k.logger.Warn("discarding invalid stored master key",
			slog.String("user_id", userID), slog.String("key_suffix", string(suffix)))
		if err := k.state.Remove(ctx, stateDomain.FieldStoredMasterKey, suffixOpts); err != nil {
			return nil, err
		}
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	if err := k.state.Set(ctx, stateDomain.FieldMasterKey, stored, opts); err != nil {
		return nil, err
	}
	return key, nil
}

func (k *keyUseCase) HasKeyInMemory(ctx context.Context, userID string) (bool, error) {
	return k.state.Get(ctx, stateDomain.FieldMasterKey, new([]byte), stateDomain.ForUser(userID))
}

func (k *keyUseCase) HasKeyStored(ctx context.Context, suffix stateDomain.KeySuffix, userID string) (bool, error) {
	if !k.state.HasSecureStorage() {
		return false, nil
	}
	opts := stateDomain.ForUser(userID).WithKeySuffix(suffix)
	return k.state.Get(ctx, stateDomain.FieldStoredMasterKey, new([]byte), opts)
}

func (k *keyUseCase) ValidateKey(ctx context.Context, key *cryptoDomain.SymmetricKey, userID string) (bool, error) {
	encPrivateKey, found, err := stateUsecase.GetValue[string](
		ctx, k.state, stateDomain.FieldEncryptedPrivateKey, stateDomain.ForUser(userID))
	if err != nil || !found {
		return false, err
	}

	encKey, err := k.unwrapEncKey(ctx, key, userID)
	if err != nil {
		if isCryptoFailure(err) {
			return false, nil
		}
		return false, err
	}
	defer encKey.Destroy()

	privateKey, err := k.decryptString(encPrivateKey, encKey)
	if err != nil {
		return false, nil
	}
	defer cryptoDomain.Zero(privateKey)

	if _, err := k.keyManager.PublicKeyFromPrivate(privateKey); err != nil {
		return false, nil
	}
	return true, nil
}

func (k *keyUseCase) SetKeyHash(ctx context.Context, keyHash string, userID string) error {
	return k.state.Set(ctx, stateDomain.FieldKeyHash, keyHash, stateDomain.ForUser(userID))
}

func (k *keyUseCase) GetKeyHash(ctx context.Context, userID string) (string, error) {
	keyHash, _, err := stateUsecase.GetValue[string](ctx, k.state, stateDomain.FieldKeyHash, stateDomain.ForUser(userID))
	return keyHash, err
}

func (k *keyUseCase) CompareAndUpdateKeyHash(
	ctx context.Context,
	password string,
	key *cryptoDomain.SymmetricKey,
	userID string,
) (bool, error) {
	stored, err := k.GetKeyHash(ctx, userID)
	if err != nil {
		return false, err
	}
	if stored == "" || password == "" || key == nil {
		return false, nil
	}

	localHash, err := k.kdf.HashPassword(password, key, cryptoDomain.HashPurposeLocalAuthorization)
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(localHash)) == 1 {
		return true, nil
	}

	serverHash, err := k.kdf.HashPassword(password, key, cryptoDomain.HashPurposeServerAuthorization)
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(serverHash)) == 1 {
		return true, k.SetKeyHash(ctx, localHash, userID)
	}
	return false, nil
}

func (k *keyUseCase) SetEncKey(ctx context.Context, encKey string, userID string) error {
	if encKey == "" {
		return nil
	}
	opts := stateDomain.ForUser(userID)
	if err := k.state.Remove(ctx, stateDomain.FieldDecryptedEncKey, opts); err != nil {
		return err
	}
	return k.state.Set(ctx, stateDomain.FieldEncryptedEncKey, encKey, opts)
}

func (k *keyUseCase) HasEncKey(ctx context.Context, userID string) (bool, error) {
	return k.state.Get(ctx, stateDomain.FieldEncryptedEncKey, new(string), stateDomain.ForUser(userID))
}

// unwrapEncKey decrypts the stored generated key with masterKey. A 32-byte
// master key is stretched by the envelope layer when the envelope is MAC'd.
func (k *keyUseCase) unwrapEncKey(
	ctx context.Context,
	masterKey *cryptoDomain.SymmetricKey,
	userID string,
) (*cryptoDomain.SymmetricKey, error) {
	encKey, found, err := stateUsecase.GetValue[string](
		ctx, k.state, stateDomain.FieldEncryptedEncKey, stateDomain.ForUser(userID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	raw, err := k.decryptString(encKey, masterKey)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(raw)

	return cryptoDomain.NewSymmetricKey(raw)
}

func (k *keyUseCase) GetEncKey(
	ctx context.Context,
	masterKeyOverride *cryptoDomain.SymmetricKey,
	userID string,
) (*cryptoDomain.SymmetricKey, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}

	if masterKeyOverride != nil {
		return k.resolveEncKey(ctx, masterKeyOverride, userID)
	}

	v, err := k.shared(ctx, "encKey:"+userID, func(ctx context.Context) (any, error) {
		return k.resolveEncKey(ctx, nil, userID)
	})
	if err != nil {
		return nil, err
	}
	return cloneKey(v.(*cryptoDomain.SymmetricKey))
}

func (k *keyUseCase) resolveEncKey(
	ctx context.Context,
	masterKey *cryptoDomain.SymmetricKey,
	userID string,
) (*cryptoDomain.SymmetricKey, error) {
	opts := stateDomain.ForUser(userID)

	cached, found, err := stateUsecase.GetValue[[]byte](ctx, k.state, stateDomain.FieldDecryptedEncKey, opts)
	if err != nil {
		return nil, err
	}
	if found {
		defer cryptoDomain.Zero(cached)
		return cryptoDomain.NewSymmetricKey(cached)
	}

	if masterKey == nil {
		masterKey, err = k.GetKey(ctx, stateDomain.KeySuffixNone, userID)
		if err != nil {
			return nil, err
		}
		defer masterKey.Destroy()
	}

	encKey, err := k.unwrapEncKey(ctx, masterKey, userID)
	if err != nil {
		k.logger.Warn("failed to resolve generated encryption key", slog.String("user_id", userID), slog.Any("error", err))
		return nil, err
	}

	raw := encKey.Key()
	defer cryptoDomain.Zero(raw)
	if err := k.state.Set(ctx, stateDomain.FieldDecryptedEncKey, raw, opts); err != nil {
		return nil, err
	}
	return encKey, nil
}

func (k *keyUseCase) SetEncPrivateKey(ctx context.Context, encPrivateKey string, userID string) error {
	if encPrivateKey == "" {
		return nil
	}
	opts := stateDomain.ForUser(userID)
	if err := k.state.Remove(ctx, stateDomain.FieldDecryptedPrivateKey, opts); err != nil {
		return err
	}
	if err := k.state.Remove(ctx, stateDomain.FieldPublicKey, opts); err != nil {
		return err
	}
	return k.state.Set(ctx, stateDomain.FieldEncryptedPrivateKey, encPrivateKey, opts)
}

func (k *keyUseCase) GetPrivateKey(ctx context.Context, userID string) ([]byte, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}

	v, err := k.shared(ctx, "privateKey:"+userID, func(ctx context.Context) (any, error) {
		opts := stateDomain.ForUser(userID)

		cached, found, err := stateUsecase.GetValue[[]byte](ctx, k.state, stateDomain.FieldDecryptedPrivateKey, opts)
		if err != nil || found {
			return cached, err
		}

		encPrivateKey, found, err := stateUsecase.GetValue[string](ctx, k.state, stateDomain.FieldEncryptedPrivateKey, opts)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, cryptoDomain.ErrKeyUnresolved
		}

		encKey, err := k.GetEncKey(ctx, nil, userID)
		if err != nil {
			return nil, err
		}
		defer encKey.Destroy()

		privateKey, err := k.decryptString(encPrivateKey, encKey)
		if err != nil {
			k.logger.Warn("failed to decrypt private key", slog.String("user_id", userID), slog.Any("error", err))
			return nil, err
		}
		if err := k.state.Set(ctx, stateDomain.FieldDecryptedPrivateKey, privateKey, opts); err != nil {
			return nil, err
		}
		return privateKey, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), v.([]byte)...), nil
}

func (k *keyUseCase) GetPublicKey(ctx context.Context, userID string) ([]byte, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	opts := stateDomain.ForUser(userID)

	cached, found, err := stateUsecase.GetValue[[]byte](ctx, k.state, stateDomain.FieldPublicKey, opts)
	if err != nil || found {
		return cached, err
	}

	privateKey, err := k.GetPrivateKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(privateKey)

	publicKey, err := k.keyManager.PublicKeyFromPrivate(privateKey)
	if err != nil {
		return nil, err
	}
	if err := k.state.Set(ctx, stateDomain.FieldPublicKey, publicKey, opts); err != nil {
		return nil, err
	}
	return publicKey, nil
}

func (k *keyUseCase) SetOrgKeys(
	ctx context.Context,
	orgs []cryptoDomain.OrganizationKey,
	providerOrgs []cryptoDomain.ProviderOrganizationKey,
	userID string,
) error {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return err
	}

	stored := make(map[string]stateDomain.EncryptedOrganizationKey, len(orgs)+len(providerOrgs))
	for _, org := range orgs {
		stored[org.ID] = stateDomain.EncryptedOrganizationKey{Key: org.Key}
	}

	if len(providerOrgs) > 0 {
		publicKey, err := k.GetPublicKey(ctx, userID)
		if err != nil {
			return err
		}

		for _, org := range providerOrgs {
			wrapped, err := k.rewrapProviderOrgKey(ctx, org, publicKey, userID)
			if err != nil {
				return fmt.Errorf("failed to re-wrap organization key %s: %w", org.ID, err)
			}
			stored[org.ID] = stateDomain.EncryptedOrganizationKey{Key: wrapped, ProviderID: org.ProviderID}
		}
	}

	opts := stateDomain.ForUser(userID)
	if err := k.state.Remove(ctx, stateDomain.FieldDecryptedOrganizationKeys, opts); err != nil {
		return err
	}
	return k.state.Set(ctx, stateDomain.FieldEncryptedOrganizationKeys, stored, opts)
}

// rewrapProviderOrgKey moves an organization key from provider custody to the user.
func (k *keyUseCase) rewrapProviderOrgKey(
	ctx context.Context,
	org cryptoDomain.ProviderOrganizationKey,
	publicKey []byte,
	userID string,
) (string, error) {
	providerKey, err := k.GetProviderKey(ctx, org.ProviderID, userID)
	if err != nil {
		return "", err
	}
	defer providerKey.Destroy()

	raw, err := k.decryptString(org.Key, providerKey)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(raw)

	enc, err := k.envelope.RSAEncrypt(raw, publicKey)
	if err != nil {
		return "", err
	}
	return enc.String(), nil
}

func (k *keyUseCase) GetOrgKeys(ctx context.Context, userID string) (map[string]*cryptoDomain.SymmetricKey, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}

	v, err := k.shared(ctx, "orgKeys:"+userID, func(ctx context.Context) (any, error) {
		opts := stateDomain.ForUser(userID)
		encrypted, _, err := stateUsecase.GetValue[map[string]stateDomain.EncryptedOrganizationKey](
			ctx, k.state, stateDomain.FieldEncryptedOrganizationKeys, opts)
		if err != nil {
			return nil, err
		}

		wrapped := make(map[string]string, len(encrypted))
		for id, org := range encrypted {
			wrapped[id] = org.Key
		}
		return k.resolveRSAKeys(ctx, userID, "organization", stateDomain.FieldDecryptedOrganizationKeys, wrapped)
	})
	if err != nil {
		return nil, err
	}
	return cloneKeys(v.(map[string]*cryptoDomain.SymmetricKey))
}

func (k *keyUseCase) GetOrgKey(ctx context.Context, orgID string, userID string) (*cryptoDomain.SymmetricKey, error) {
	keys, err := k.GetOrgKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	key, ok := keys[orgID]
	if !ok {
		return nil, cryptoDomain.ErrKeyUnresolved
	}
	return key, nil
}

func (k *keyUseCase) SetProviderKeys(ctx context.Context, providers []cryptoDomain.ProviderKey, userID string) error {
	stored := make(map[string]string, len(providers))
	for _, provider := range providers {
		stored[provider.ID] = provider.Key
	}

	opts := stateDomain.ForUser(userID)
	if err := k.state.Remove(ctx, stateDomain.FieldDecryptedProviderKeys, opts); err != nil {
		return err
	}
	return k.state.Set(ctx, stateDomain.FieldEncryptedProviderKeys, stored, opts)
}

func (k *keyUseCase) GetProviderKeys(ctx context.Context, userID string) (map[string]*cryptoDomain.SymmetricKey, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}

	v, err := k.shared(ctx, "providerKeys:"+userID, func(ctx context.Context) (any, error) {
		encrypted, _, err := stateUsecase.GetValue[map[string]string](
			ctx, k.state, stateDomain.FieldEncryptedProviderKeys, stateDomain.ForUser(userID))
		if err != nil {
			return nil, err
		}
		return k.resolveRSAKeys(ctx, userID, "provider", stateDomain.FieldDecryptedProviderKeys, encrypted)
	})
	if err != nil {
		return nil, err
	}
	return cloneKeys(v.(map[string]*cryptoDomain.SymmetricKey))
}

func (k *keyUseCase) GetProviderKey(ctx context.Context, providerID string, userID string) (*cryptoDomain.SymmetricKey, error) {
	keys, err := k.GetProviderKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	key, ok := keys[providerID]
	if !ok {
		return nil, cryptoDomain.ErrKeyUnresolved
	}
	return key, nil
}

// resolveRSAKeys returns the cached decrypted keys of cacheField or unwraps
// encrypted with the private key. A bad entry is logged and skipped; the
// cache is written only when at least one entry decrypted.
func (k *keyUseCase) resolveRSAKeys(
	ctx context.Context,
	userID, kind string,
	cacheField stateDomain.Field,
	encrypted map[string]string,
) (map[string]*cryptoDomain.SymmetricKey, error) {
	opts := stateDomain.ForUser(userID)

	cached, found, err := stateUsecase.GetValue[map[string][]byte](ctx, k.state, cacheField, opts)
	if err != nil {
		return nil, err
	}
	if found {
		return keysFromRaw(cached)
	}

	result := make(map[string]*cryptoDomain.SymmetricKey, len(encrypted))
	if len(encrypted) == 0 {
		return result, nil
	}

	privateKey, err := k.GetPrivateKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(privateKey)

	raw := make(map[string][]byte, len(encrypted))
	for id, wrapped := range encrypted {
		keyBytes, err := k.envelope.RSADecrypt(wrapped, privateKey)
		if err != nil {
			k.logger.Warn("failed to decrypt "+kind+" key",
				slog.String("user_id", userID), slog.String("id", id), slog.Any("error", err))
			continue
		}
		key, err := cryptoDomain.NewSymmetricKey(keyBytes)
		if err != nil {
			cryptoDomain.Zero(keyBytes)
			k.logger.Warn("invalid "+kind+" key",
				slog.String("user_id", userID), slog.String("id", id), slog.Any("error", err))
			continue
		}
		result[id] = key
		raw[id] = keyBytes
	}

	if len(result) > 0 {
		err := k.state.Set(ctx, cacheField, raw, opts)
		for _, b := range raw {
			cryptoDomain.Zero(b)
		}
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func keysFromRaw(raw map[string][]byte) (map[string]*cryptoDomain.SymmetricKey, error) {
	out := make(map[string]*cryptoDomain.SymmetricKey, len(raw))
	for id, b := range raw {
		key, err := cryptoDomain.NewSymmetricKey(b)
		cryptoDomain.Zero(b)
		if err != nil {
			return nil, err
		}
		out[id] = key
	}
	return out, nil
}

func (k *keyUseCase) SetPinProtectedKey(
	ctx context.Context,
	pin, salt string,
	kdf cryptoDomain.KdfConfig,
	key *cryptoDomain.SymmetricKey,
	userID string,
) error {
	if key == nil {
		return cryptoDomain.ErrKeyUnresolved
	}

	pinKey, err := k.kdf.MakePinKey(pin, salt, kdf)
	if err != nil {
		return err
	}
	defer pinKey.Destroy()

	raw := key.Key()
	defer cryptoDomain.Zero(raw)

	enc, err := k.envelope.Encrypt(raw, pinKey)
	if err != nil {
		return err
	}
	return k.state.Set(ctx, stateDomain.FieldEncryptedPinProtected, enc.String(), stateDomain.ForUser(userID))
}

func (k *keyUseCase) DecryptWithPin(
	ctx context.Context,
	pin, salt string,
	kdf cryptoDomain.KdfConfig,
	userID string,
) (*cryptoDomain.SymmetricKey, error) {
	opts := stateDomain.ForUser(userID)

	protected, found, err := stateUsecase.GetValue[string](ctx, k.state, stateDomain.FieldDecryptedPinProtected, opts)
	if err != nil {
		return nil, err
	}
	if !found {
		protected, found, err = stateUsecase.GetValue[string](ctx, k.state, stateDomain.FieldEncryptedPinProtected, opts)
		if err != nil {
			return nil, err
		}
	}
	if !found {
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	pinKey, err := k.kdf.MakePinKey(pin, salt, kdf)
	if err != nil {
		return nil, err
	}
	defer pinKey.Destroy()

	raw, err := k.decryptString(protected, pinKey)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(raw)

	return cryptoDomain.NewSymmetricKey(raw)
}

func (k *keyUseCase) GetFingerprint(ctx context.Context, fingerprintMaterial string, userID string) ([]string, error) {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	if fingerprintMaterial == "" {
		fingerprintMaterial = userID
	}

	publicKey, err := k.GetPublicKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	return k.keyManager.Fingerprint(fingerprintMaterial, publicKey)
}

func (k *keyUseCase) ClearKey(ctx context.Context, clearSecureStorage bool, userID string) error {
	opts := stateDomain.ForUser(userID)
	if err := k.state.Remove(ctx, stateDomain.FieldMasterKey, opts); err != nil {
		return err
	}
	if !clearSecureStorage || !k.state.HasSecureStorage() {
		return nil
	}
	for _, suffix := range []stateDomain.KeySuffix{stateDomain.KeySuffixAuto, stateDomain.KeySuffixBiometric} {
		if err := k.state.Remove(ctx, stateDomain.FieldStoredMasterKey, opts.WithKeySuffix(suffix)); err != nil {
			return err
		}
	}
	return nil
}

func (k *keyUseCase) ClearKeyHash(ctx context.Context, userID string) error {
	return k.state.Remove(ctx, stateDomain.FieldKeyHash, stateDomain.ForUser(userID))
}

// clearPair removes the memory field and, unless memoryOnly, its disk counterparts.
func (k *keyUseCase) clearPair(
	ctx context.Context,
	memoryOnly bool,
	userID string,
	memoryFields []stateDomain.Field,
	diskFields ...stateDomain.Field,
) error {
	opts := stateDomain.ForUser(userID)
	fields := memoryFields
	if !memoryOnly {
		fields = append(fields, diskFields...)
	}
	for _, field := range fields {
		if err := k.state.Remove(ctx, field, opts); err != nil {
			return err
		}
	}
	return nil
}

func (k *keyUseCase) ClearEncKey(ctx context.Context, memoryOnly bool, userID string) error {
	return k.clearPair(ctx, memoryOnly, userID,
		[]stateDomain.Field{stateDomain.FieldDecryptedEncKey}, stateDomain.FieldEncryptedEncKey)
}

func (k *keyUseCase) ClearKeyPair(ctx context.Context, memoryOnly bool, userID string) error {
	return k.clearPair(ctx, memoryOnly, userID,
		[]stateDomain.Field{stateDomain.FieldDecryptedPrivateKey, stateDomain.FieldPublicKey},
		stateDomain.FieldEncryptedPrivateKey)
}

func (k *keyUseCase) ClearOrgKeys(ctx context.Context, memoryOnly bool, userID string) error {
	return k.clearPair(ctx, memoryOnly, userID,
		[]stateDomain.Field{stateDomain.FieldDecryptedOrganizationKeys}, stateDomain.FieldEncryptedOrganizationKeys)
}

func (k *keyUseCase) ClearProviderKeys(ctx context.Context, memoryOnly bool, userID string) error {
	return k.clearPair(ctx, memoryOnly, userID,
		[]stateDomain.Field{stateDomain.FieldDecryptedProviderKeys}, stateDomain.FieldEncryptedProviderKeys)
}

func (k *keyUseCase) ClearPinProtectedKey(ctx context.Context, memoryOnly bool, userID string) error {
	return k.clearPair(ctx, memoryOnly, userID,
		[]stateDomain.Field{stateDomain.FieldDecryptedPinProtected}, stateDomain.FieldEncryptedPinProtected)
}

func (k *keyUseCase) ClearKeys(ctx context.Context, memoryOnly bool, userID string) error {
	userID, err := k.resolveUser(userID)
	if err != nil {
		return err
	}

	errs := []error{
		k.ClearKey(ctx, !memoryOnly, userID),
		k.ClearOrgKeys(ctx, memoryOnly, userID),
		k.ClearProviderKeys(ctx, memoryOnly, userID),
		k.ClearEncKey(ctx, memoryOnly, userID),
		k.ClearKeyPair(ctx, memoryOnly, userID),
		k.ClearPinProtectedKey(ctx, memoryOnly, userID),
	}
	if !memoryOnly {
		errs = append(errs, k.ClearKeyHash(ctx, userID))
	}
	return errors.Join(errs...)
}
