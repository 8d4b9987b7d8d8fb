package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
	authService "github.com/allisson/passvault/internal/auth/service"
	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
	cryptoUsecase "github.com/allisson/passvault/internal/crypto/usecase"
	"github.com/allisson/passvault/internal/messaging"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
	stateUsecase "github.com/allisson/passvault/internal/state/usecase"
)

const userScope = authDomain.ScopeAPI + " " + authDomain.ScopeOfflineAccess

// Options carries the client identity sent with every token request.
type Options struct {
	ClientID   string
	DeviceType int
	DeviceName string
	// KeyConnectorURL is used when a token response asks for the key
	// connector without naming one.
	KeyConnectorURL string
}

// strategy is one login attempt. kind selects which of the variant fields
// are meaningful.
type strategy struct {
	kind    authDomain.StrategyKind
	request *authDomain.TokenRequest

	// password
	masterKey     *cryptoDomain.SymmetricKey
	localHash     string
	captchaBypass string

	// sso
	orgID string

	generation uint64
}

func (s *strategy) destroy() {
	if s.masterKey != nil {
		s.masterKey.Destroy()
	}
}

type authUseCase struct {
	state        stateUsecase.StateUseCase
	keys         cryptoUsecase.KeyUseCase
	kdf          cryptoService.KdfService
	keyManager   cryptoService.KeyManager
	identity     authService.IdentityAPI
	keyConnector authService.KeyConnectorAPI
	tokens       authService.TokenService
	signals      *messaging.Broker[messaging.Signal]
	opts         Options
	logger       *slog.Logger

	mu      sync.Mutex
	pending *strategy
	// generation grows on every LogIn and ClearPending; a strategy from an
	// older generation never re-enters the pending slot.
	generation uint64
}

// NewAuthUseCase creates the login state machine. keyConnector may be nil
// when no key connector is deployed.
func NewAuthUseCase(
	state stateUsecase.StateUseCase,
	keys cryptoUsecase.KeyUseCase,
	kdf cryptoService.KdfService,
	keyManager cryptoService.KeyManager,
	identity authService.IdentityAPI,
	keyConnector authService.KeyConnectorAPI,
	tokens authService.TokenService,
	signals *messaging.Broker[messaging.Signal],
	opts Options,
	logger *slog.Logger,
) AuthUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &authUseCase{
		state:        state,
		keys:         keys,
		kdf:          kdf,
		keyManager:   keyManager,
		identity:     identity,
		keyConnector: keyConnector,
		tokens:       tokens,
		signals:      signals,
		opts:         opts,
		logger:       logger,
	}
}

func (a *authUseCase) LogIn(ctx context.Context, creds authDomain.Credentials) (*authDomain.AuthResult, error) {
	generation := a.clearPending()

	if creds == nil {
		return nil, authDomain.ErrInvalidCredentials
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	s, err := a.buildStrategy(ctx, creds)
	if err != nil {
		return nil, err
	}
	s.generation = generation

	result, err := a.submit(ctx, s)
	if err == nil && result.TwoFactorRequired() {
		a.restorePending(s)
		return result, nil
	}

	s.destroy()
	return result, err
}

func (a *authUseCase) LogInTwoFactor(
	ctx context.Context,
	twoFactor authDomain.TwoFactorInput,
	captchaToken string,
) (*authDomain.AuthResult, error) {
	// Take the strategy out of the slot so ClearPending cannot destroy it mid-flight.
	a.mu.Lock()
	s := a.pending
	a.pending = nil
	a.mu.Unlock()

	if s == nil {
		return nil, authDomain.ErrNoPendingLogIn
	}

	s.request.TwoFactor = &twoFactor
	switch {
	case captchaToken != "":
		s.request.CaptchaToken = captchaToken
	case s.captchaBypass != "":
		s.request.CaptchaToken = s.captchaBypass
	}

	result, err := a.submit(ctx, s)
	if err != nil || result.TwoFactorRequired() || result.RequiresCaptcha() {
		a.restorePending(s)
		return result, err
	}

	s.destroy()
	return result, nil
}

// restorePending parks s in the pending slot unless a newer login started or
// the caller cleared pending logins since s was built.
func (a *authUseCase) restorePending(s *strategy) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil && s.generation == a.generation {
		a.pending = s
		return
	}
	s.destroy()
}

func (a *authUseCase) ClearPending() {
	a.clearPending()
}

// clearPending drops the pending login and returns the new generation.
func (a *authUseCase) clearPending() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
	if a.pending != nil {
		a.pending.destroy()
		a.pending = nil
	}
	return a.generation
}

func (a *authUseCase) HasPending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

func (a *authUseCase) buildStrategy(ctx context.Context, creds authDomain.Credentials) (*strategy, error) {
	device, err := a.device(ctx)
	if err != nil {
		return nil, err
	}

	req := &authDomain.TokenRequest{
		ClientID:  a.opts.ClientID,
		Scope:     userScope,
		Device:    device,
		TwoFactor: authDomain.TwoFactorOf(creds),
	}

	switch c := creds.(type) {
	case *authDomain.PasswordCredentials:
		return a.buildPasswordStrategy(ctx, c, req)

	case *authDomain.SSOCredentials:
		req.GrantType = authDomain.GrantAuthorizationCode
		req.Code = c.Code
		req.CodeVerifier = c.CodeVerifier
		req.RedirectURI = c.RedirectURL
		return &strategy{kind: authDomain.StrategySSO, request: req, orgID: c.OrgID}, nil

	case *authDomain.APIKeyCredentials:
		req.GrantType = authDomain.GrantClientCredentials
		req.ClientID = c.ClientID
		req.ClientSecret = c.ClientSecret
		req.Scope = c.Scope()
		return &strategy{kind: authDomain.StrategyAPIKey, request: req}, nil
	}

	return nil, fmt.Errorf("%w: unsupported login strategy", authDomain.ErrInvalidCredentials)
}

func (a *authUseCase) buildPasswordStrategy(
	ctx context.Context,
	c *authDomain.PasswordCredentials,
	req *authDomain.TokenRequest,
) (*strategy, error) {
	email := strings.ToLower(strings.TrimSpace(c.Email))

	kdf, err := a.prelogin(ctx, email)
	if err != nil {
		return nil, err
	}

	masterKey, err := a.kdf.DeriveMasterKey(c.MasterPassword, email, kdf)
	if err != nil {
		return nil, err
	}

	localHash, err := a.kdf.HashPassword(c.MasterPassword, masterKey, cryptoDomain.HashPurposeLocalAuthorization)
	if err != nil {
		masterKey.Destroy()
		return nil, err
	}
	serverHash, err := a.kdf.HashPassword(c.MasterPassword, masterKey, cryptoDomain.HashPurposeServerAuthorization)
	if err != nil {
		masterKey.Destroy()
		return nil, err
	}

	if req.TwoFactor == nil {
		req.TwoFactor, err = a.rememberedTwoFactor(ctx, email)
		if err != nil {
			masterKey.Destroy()
			return nil, err
		}
	}

	req.GrantType = authDomain.GrantPassword
	req.Email = email
	req.MasterPasswordHash = serverHash
	req.CaptchaToken = c.CaptchaToken

	return &strategy{
		kind:      authDomain.StrategyPassword,
		request:   req,
		masterKey: masterKey,
		localHash: localHash,
	}, nil
}

// prelogin fetches the account KDF. An unknown account gets the defaults.
func (a *authUseCase) prelogin(ctx context.Context, email string) (cryptoDomain.KdfConfig, error) {
	resp, err := a.identity.PreLogin(ctx, email)
	if err != nil {
		if authDomain.IsNotFound(err) {
			return cryptoDomain.DefaultKdfConfig(), nil
		}
		return cryptoDomain.KdfConfig{}, err
	}
	return cryptoDomain.KdfConfig{Type: cryptoDomain.KdfType(resp.Kdf), Iterations: resp.KdfIterations}, nil
}

func (a *authUseCase) rememberedTwoFactor(ctx context.Context, email string) (*authDomain.TwoFactorInput, error) {
	tokens, _, err := stateUsecase.GetValue[map[string]string](
		ctx, a.state, stateDomain.FieldTwoFactorTokens, stateDomain.StorageOptions{})
	if err != nil {
		return nil, err
	}
	token, ok := tokens[email]
	if !ok {
		return nil, nil
	}
	return &authDomain.TwoFactorInput{Provider: authDomain.TwoFactorRemember, Token: token}, nil
}

func (a *authUseCase) rememberTwoFactor(ctx context.Context, email, token string) error {
	return stateUsecase.UpdateValue(ctx, a.state, stateDomain.FieldTwoFactorTokens, stateDomain.StorageOptions{},
		func(tokens map[string]string, _ bool) (map[string]string, error) {
			if tokens == nil {
				tokens = map[string]string{}
			}
			tokens[email] = token
			return tokens, nil
		})
}

// device returns the device descriptor, generating the app id on first use.
func (a *authUseCase) device(ctx context.Context) (authDomain.Device, error) {
	var appID string
	err := stateUsecase.UpdateValue(ctx, a.state, stateDomain.FieldAppID, stateDomain.StorageOptions{},
		func(current string, found bool) (string, error) {
			if !found || current == "" {
				current = uuid.NewString()
			}
			appID = current
			return current, nil
		})
	if err != nil {
		return authDomain.Device{}, err
	}
	return authDomain.Device{Type: a.opts.DeviceType, Name: a.opts.DeviceName, Identifier: appID}, nil
}

// submit posts the request and classifies the response.
func (a *authUseCase) submit(ctx context.Context, s *strategy) (*authDomain.AuthResult, error) {
	resp, err := a.identity.PostIdentityToken(ctx, s.request)
	if err != nil {
		return nil, err
	}

	switch resp.Classify() {
	case authDomain.ResponseCaptcha:
		return &authDomain.AuthResult{CaptchaSiteKey: resp.SiteKey}, nil
	case authDomain.ResponseTwoFactor:
		if s.kind == authDomain.StrategyPassword {
			s.captchaBypass = resp.CaptchaBypassToken
		}
		return &authDomain.AuthResult{TwoFactorProviders: resp.TwoFactorProviders}, nil
	}

	if resp.Token == nil || resp.Token.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty token response", authDomain.ErrAuthenticationRejected)
	}
	return a.processTokenResponse(ctx, s, resp.Token)
}

func (a *authUseCase) processTokenResponse(
	ctx context.Context,
	s *strategy,
	token *authDomain.TokenResponse,
) (*authDomain.AuthResult, error) {
	claims, err := a.tokens.DecodeClaims(token.AccessToken)
	if err != nil {
		return nil, err
	}
	userID := claims.Subject
	opts := stateDomain.ForUser(userID)

	err = a.state.AddAccount(ctx, stateDomain.Account{
		Profile: stateDomain.AccountProfile{
			UserID:        userID,
			Email:         claims.Email,
			Name:          claims.Name,
			EmailVerified: claims.EmailVerified,
			HasPremium:    claims.Premium,
			KdfType:       token.Kdf,
			KdfIterations: token.KdfIterations,
		},
		Tokens: stateDomain.AccountTokens{AccessToken: token.AccessToken, RefreshToken: token.RefreshToken},
	})
	if err != nil {
		return nil, err
	}

	if tf := s.request.TwoFactor; tf != nil && tf.Remember && token.TwoFactorToken != "" {
		email := s.request.Email
		if email == "" {
			email = strings.ToLower(claims.Email)
		}
		if err := a.rememberTwoFactor(ctx, email, token.TwoFactorToken); err != nil {
			return nil, err
		}
	}

	if err := a.state.Set(ctx, stateDomain.FieldForcePasswordReset, token.ForcePasswordReset, opts); err != nil {
		return nil, err
	}

	if token.Key != "" {
		if err := a.keys.SetEncKey(ctx, token.Key, userID); err != nil {
			return nil, err
		}
		if token.PrivateKey != "" {
			if err := a.keys.SetEncPrivateKey(ctx, token.PrivateKey, userID); err != nil {
				return nil, err
			}
		} else {
			a.createKeyPairForOldAccount(ctx, s, userID, token.AccessToken)
		}
	}

	if err := a.state.Set(ctx, stateDomain.FieldBiometricLocked, false, opts); err != nil {
		return nil, err
	}

	if err := a.onSuccess(ctx, s, token, userID); err != nil {
		return nil, err
	}

	a.logger.Info("login succeeded", slog.String("user_id", userID), slog.String("strategy", s.kind.String()))
	a.signals.Send(messaging.Signal{Command: messaging.CommandLoggedIn, UserID: userID})

	return &authDomain.AuthResult{
		UserID:              userID,
		ForcePasswordReset:  token.ForcePasswordReset,
		ResetMasterPassword: token.ResetMasterPassword,
	}, nil
}

// createKeyPairForOldAccount generates and uploads a key pair for an account
// created before key pairs existed. Failures are logged; the login proceeds.
func (a *authUseCase) createKeyPairForOldAccount(ctx context.Context, s *strategy, userID, accessToken string) {
	err := func() error {
		encKey, err := a.keys.GetEncKey(ctx, s.masterKey, userID)
		if err != nil {
			return err
		}
		defer encKey.Destroy()

		publicKey, encPrivateKey, err := a.keyManager.MakeKeyPair(encKey)
		if err != nil {
			return err
		}
		err = a.identity.PostAccountKeys(ctx, accessToken, authDomain.KeysRequest{
			PublicKey:           base64.StdEncoding.EncodeToString(publicKey),
			EncryptedPrivateKey: encPrivateKey.String(),
		})
		if err != nil {
			return err
		}
		return a.keys.SetEncPrivateKey(ctx, encPrivateKey.String(), userID)
	}()
	if err != nil {
		a.logger.Warn("failed to create key pair for account",
			slog.String("user_id", userID), slog.Any("error", err))
	}
}

// onSuccess runs the variant-specific success hooks.
func (a *authUseCase) onSuccess(
	ctx context.Context,
	s *strategy,
	token *authDomain.TokenResponse,
	userID string,
) error {
	switch s.kind {
	case authDomain.StrategyPassword:
		if err := a.keys.SetKey(ctx, s.masterKey, userID); err != nil {
			return err
		}
		return a.keys.SetKeyHash(ctx, s.localHash, userID)

	case authDomain.StrategySSO, authDomain.StrategyAPIKey:
		if s.kind == authDomain.StrategyAPIKey {
			if err := a.saveAPIKey(ctx, s.request, userID); err != nil {
				return err
			}
		}
		if !token.APIUseKeyConnector {
			return nil
		}
		url := token.KeyConnectorURL
		if url == "" {
			url = a.opts.KeyConnectorURL
		}
		if a.keyConnector == nil || url == "" {
			a.logger.Warn("key connector requested but not configured", slog.String("user_id", userID))
			return nil
		}
		if token.Key != "" {
			return a.fetchKeyConnectorKey(ctx, url, token.AccessToken, userID)
		}
		if s.kind == authDomain.StrategySSO {
			return a.enrollKeyConnector(ctx, s, url, token, userID)
		}
	}
	return nil
}

// saveAPIKey keeps the client id on disk and the secret in memory only.
func (a *authUseCase) saveAPIKey(ctx context.Context, req *authDomain.TokenRequest, userID string) error {
	opts := stateDomain.ForUser(userID)
	if err := a.state.Set(ctx, stateDomain.FieldApiKeyClientID, req.ClientID, opts); err != nil {
		return err
	}
	return a.state.Set(ctx, stateDomain.FieldApiKeyClientSecret, req.ClientSecret, opts)
}

func (a *authUseCase) fetchKeyConnectorKey(ctx context.Context, url, accessToken, userID string) error {
	b64, err := a.keyConnector.GetUserKey(ctx, url, accessToken)
	if err != nil {
		return errors.Join(authDomain.ErrKeyConnector, err)
	}
	masterKey, err := cryptoDomain.SymmetricKeyFromB64(b64)
	if err != nil {
		return errors.Join(authDomain.ErrKeyConnector, err)
	}
	defer masterKey.Destroy()

	if err := a.keys.SetKey(ctx, masterKey, userID); err != nil {
		return err
	}
	return a.state.Set(ctx, stateDomain.FieldUsesKeyConnector, true, stateDomain.ForUser(userID))
}

// enrollKeyConnector creates the whole key hierarchy for a new SSO user and
// hands the master key to the key connector.
func (a *authUseCase) enrollKeyConnector(
	ctx context.Context,
	s *strategy,
	url string,
	token *authDomain.TokenResponse,
	userID string,
) error {
	raw, err := a.keyManager.RandomBytes(32)
	if err != nil {
		return err
	}
	masterKey, err := cryptoDomain.NewSymmetricKey(raw)
	cryptoDomain.Zero(raw)
	if err != nil {
		return err
	}
	defer masterKey.Destroy()

	if err := a.keyConnector.PostUserKey(ctx, url, token.AccessToken, masterKey.KeyB64()); err != nil {
		return errors.Join(authDomain.ErrKeyConnector, err)
	}

	encKey, wrappedEncKey, err := a.keyManager.MakeEncKey(masterKey)
	if err != nil {
		return err
	}
	defer encKey.Destroy()

	publicKey, encPrivateKey, err := a.keyManager.MakeKeyPair(encKey)
	if err != nil {
		return err
	}

	if err := a.keys.SetKey(ctx, masterKey, userID); err != nil {
		return err
	}
	if err := a.keys.SetEncKey(ctx, wrappedEncKey.String(), userID); err != nil {
		return err
	}
	if err := a.keys.SetEncPrivateKey(ctx, encPrivateKey.String(), userID); err != nil {
		return err
	}

	err = a.identity.PostSetKeyConnectorKey(ctx, token.AccessToken, authDomain.SetKeyConnectorKeyRequest{
		Key: wrappedEncKey.String(),
		Keys: authDomain.KeysRequest{
			PublicKey:           base64.StdEncoding.EncodeToString(publicKey),
			EncryptedPrivateKey: encPrivateKey.String(),
		},
		Kdf:           token.Kdf,
		KdfIterations: token.KdfIterations,
		OrgIdentifier: s.orgID,
	})
	if err != nil {
		return err
	}

	opts := stateDomain.ForUser(userID)
	if err := a.state.Set(ctx, stateDomain.FieldUsesKeyConnector, true, opts); err != nil {
		return err
	}
	return a.state.Set(ctx, stateDomain.FieldConvertAccountToKeyConnector, true, opts)
}

func (a *authUseCase) LogOut(ctx context.Context, userID string, expired bool) error {
	if userID == "" {
		userID = a.state.ActiveUserID()
	}
	if userID == "" {
		return stateDomain.ErrNoActiveAccount
	}

	if err := a.keys.ClearKeys(ctx, false, userID); err != nil {
		return err
	}
	if err := a.state.Purge(ctx, userID); err != nil {
		return err
	}

	a.logger.Info("logged out", slog.String("user_id", userID), slog.Bool("expired", expired))
	a.signals.Send(messaging.Signal{Command: messaging.CommandLoggedOut, UserID: userID, Expired: expired})
	return nil
}
