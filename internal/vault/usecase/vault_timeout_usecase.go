package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoUsecase "github.com/allisson/passvault/internal/crypto/usecase"
	"github.com/allisson/passvault/internal/messaging"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
	stateUsecase "github.com/allisson/passvault/internal/state/usecase"
)

// Config holds the vault timeout settings.
type Config struct {
	// CheckInterval is how often CheckTimeout runs once Start is called.
	CheckInterval time.Duration
}

type vaultTimeoutUseCase struct {
	config        Config
	state         stateUsecase.StateUseCase
	keys          cryptoUsecase.KeyUseCase
	logOut        LogOutHandler
	views         ViewChecker
	caches        []CacheClearer
	processReload ProcessReloadUseCase
	signals       *messaging.Broker[messaging.Signal]
	logger        *slog.Logger
	now           func() time.Time
	timer         periodic
}

// NewVaultTimeoutUseCase creates the vault timeout. views, processReload and
// caches are optional.
func NewVaultTimeoutUseCase(
	config Config,
	state stateUsecase.StateUseCase,
	keys cryptoUsecase.KeyUseCase,
	logOut LogOutHandler,
	views ViewChecker,
	processReload ProcessReloadUseCase,
	signals *messaging.Broker[messaging.Signal],
	logger *slog.Logger,
	caches ...CacheClearer,
) VaultTimeoutUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &vaultTimeoutUseCase{
		config:        config,
		state:         state,
		keys:          keys,
		logOut:        logOut,
		views:         views,
		caches:        caches,
		processReload: processReload,
		signals:       signals,
		logger:        logger,
		now:           time.Now,
	}
}

func (v *vaultTimeoutUseCase) Start(ctx context.Context) {
	armed := v.timer.start(ctx, v.config.CheckInterval, func(ctx context.Context) bool {
		if err := v.CheckTimeout(ctx); err != nil {
			v.logger.Error("vault timeout check failed", slog.Any("error", err))
		}
		return true
	})
	if armed {
		v.logger.Info("vault timeout armed", slog.Duration("interval", v.config.CheckInterval))
	}
}

func (v *vaultTimeoutUseCase) Stop() {
	v.timer.stop()
}

func (v *vaultTimeoutUseCase) viewOpen(ctx context.Context) bool {
	return v.views != nil && v.views.IsViewOpen(ctx)
}

func (v *vaultTimeoutUseCase) CheckTimeout(ctx context.Context) error {
	if v.viewOpen(ctx) {
		return nil
	}
	userID := v.state.ActiveUserID()
	if userID == "" {
		return nil
	}

	expired, err := v.ShouldLock(ctx, userID)
	if err != nil || !expired {
		return err
	}

	action, _, err := stateUsecase.GetValue[stateDomain.VaultTimeoutAction](
		ctx, v.state, stateDomain.FieldVaultTimeoutAction, stateDomain.ForUser(userID))
	if err != nil {
		return err
	}

	v.logger.Info("vault timeout elapsed", slog.String("user_id", userID), slog.String("action", string(action)))
	if action == stateDomain.VaultTimeoutActionLogOut {
		return v.LogOut(ctx, userID)
	}
	return v.Lock(ctx, userID)
}

func (v *vaultTimeoutUseCase) authenticated(ctx context.Context, userID string) (bool, error) {
	if _, err := v.state.GetAccount(ctx, userID); err != nil {
		if errors.Is(err, stateDomain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (v *vaultTimeoutUseCase) ShouldLock(ctx context.Context, userID string) (bool, error) {
	ok, err := v.authenticated(ctx, userID)
	if err != nil || !ok {
		return false, err
	}

	locked, err := v.IsLocked(ctx, userID)
	if err != nil || locked {
		return false, err
	}

	opts := stateDomain.ForUser(userID)
	timeout, found, err := stateUsecase.GetValue[int](ctx, v.state, stateDomain.FieldVaultTimeout, opts)
	if err != nil || !found || timeout < 0 {
		return false, err
	}

	lastActive, found, err := stateUsecase.GetValue[int64](ctx, v.state, stateDomain.FieldLastActive, opts)
	if err != nil || !found {
		return false, err
	}

	idle := v.now().Sub(time.UnixMilli(lastActive))
	return idle >= time.Duration(timeout)*time.Minute, nil
}

func (v *vaultTimeoutUseCase) IsLocked(ctx context.Context, userID string) (bool, error) {
	inMemory, err := v.keys.HasKeyInMemory(ctx, userID)
	if err != nil || inMemory {
		return !inMemory, err
	}

	opts := stateDomain.ForUser(userID)
	everUnlocked, _, err := stateUsecase.GetValue[bool](ctx, v.state, stateDomain.FieldEverBeenUnlocked, opts)
	if err != nil || everUnlocked {
		return true, err
	}

	key, err := v.keys.GetKey(ctx, stateDomain.KeySuffixAuto, userID)
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrKeyUnresolved) {
			return true, nil
		}
		return true, err
	}
	key.Destroy()

	if err := v.state.Set(ctx, stateDomain.FieldEverBeenUnlocked, true, opts); err != nil {
		return false, err
	}
	v.signals.Send(messaging.Signal{Command: messaging.CommandUnlocked, UserID: userID})
	return false, nil
}

// keepsUnlockPath reports whether userID can unlock without its master password.
func keepsUnlockPath(ctx context.Context, state stateUsecase.StateUseCase, userID string) (bool, error) {
	opts := stateDomain.ForUser(userID)
	for _, field := range []stateDomain.Field{stateDomain.FieldProtectedPin, stateDomain.FieldEncryptedPinProtected} {
		found, err := state.Get(ctx, field, new(string), opts)
		if err != nil || found {
			return found, err
		}
	}
	biometric, _, err := stateUsecase.GetValue[bool](ctx, state, stateDomain.FieldBiometricUnlock, opts)
	return biometric, err
}

func (v *vaultTimeoutUseCase) Lock(ctx context.Context, userID string) error {
	if userID == "" {
		userID = v.state.ActiveUserID()
	}
	ok, err := v.authenticated(ctx, userID)
	if err != nil || !ok {
		return err
	}

	opts := stateDomain.ForUser(userID)
	usesKeyConnector, _, err := stateUsecase.GetValue[bool](ctx, v.state, stateDomain.FieldUsesKeyConnector, opts)
	if err != nil {
		return err
	}
	if usesKeyConnector {
		unlockPath, err := keepsUnlockPath(ctx, v.state, userID)
		if err != nil {
			return err
		}
		if !unlockPath {
			return v.LogOut(ctx, userID)
		}
	}

	if err := v.keys.ClearKeys(ctx, true, userID); err != nil {
		return err
	}
	for _, cache := range v.caches {
		if err := cache.ClearCache(ctx, userID); err != nil {
			return err
		}
	}
	if err := v.state.Set(ctx, stateDomain.FieldEverBeenUnlocked, true, opts); err != nil {
		return err
	}
	if err := v.state.Set(ctx, stateDomain.FieldBiometricLocked, true, opts); err != nil {
		return err
	}

	v.logger.Info("vault locked", slog.String("user_id", userID))
	v.signals.Send(messaging.Signal{Command: messaging.CommandLocked, UserID: userID})

	if v.processReload != nil && userID == v.state.ActiveUserID() {
		return v.processReload.Start(ctx)
	}
	return nil
}

func (v *vaultTimeoutUseCase) LogOut(ctx context.Context, userID string) error {
	if userID == "" {
		userID = v.state.ActiveUserID()
	}
	return v.logOut.LogOut(ctx, userID, true)
}

func (v *vaultTimeoutUseCase) SetVaultTimeoutOptions(
	ctx context.Context,
	userID string,
	timeout *int,
	action stateDomain.VaultTimeoutAction,
) error {
	opts := stateDomain.ForUser(userID)

	var value any
	if timeout != nil {
		value = *timeout
	}
	if err := v.state.Set(ctx, stateDomain.FieldVaultTimeout, value, opts); err != nil {
		return err
	}
	if err := v.state.Set(ctx, stateDomain.FieldVaultTimeoutAction, action, opts); err != nil {
		return err
	}

	key, err := v.keys.GetKey(ctx, stateDomain.KeySuffixNone, userID)
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrKeyUnresolved) {
			return nil
		}
		return err
	}
	defer key.Destroy()
	return v.keys.SetKey(ctx, key, userID)
}
