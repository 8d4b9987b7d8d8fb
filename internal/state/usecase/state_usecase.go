package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/passvault/internal/messaging"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// heldLocks records the lock scopes owned by the current call chain.
type heldLocks struct {
	scope  string
	parent *heldLocks
}

type heldLocksKey struct{}

func (h *heldLocks) holds(scope string) bool {
	for l := h; l != nil; l = l.parent {
		if l.scope == scope {
			return true
		}
	}
	return false
}

// resolvedField is a field read or write after applying policy and options.
type resolvedField struct {
	key      string
	scope    string
	location stateDomain.Location
	secure   bool
}

type stateUseCase struct {
	memory StorageService
	disk   StorageService
	secure StorageService
	broker *messaging.Broker[StatusSnapshot]
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	accounts []string
	active   string

	// locks are never removed: a purged account keeps its scope mutex so
	// waiters and new callers always serialize on the same one.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewStateUseCase creates the session state store.
//
// secure may be nil when the platform has no secure storage; pass an untyped
// nil, not a nil *SecureStorage.
func NewStateUseCase(
	memory StorageService,
	disk StorageService,
	secure StorageService,
	broker *messaging.Broker[StatusSnapshot],
	logger *slog.Logger,
) StateUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &stateUseCase{
		memory: memory,
		disk:   disk,
		secure: secure,
		broker: broker,
		logger: logger,
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *stateUseCase) HasSecureStorage() bool {
	return s.secure != nil
}

func (s *stateUseCase) lockFor(scope string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[scope]
	if !ok {
		l = &sync.Mutex{}
		s.locks[scope] = l
	}
	return l
}

// withLock runs fn holding the scope lock unless ctx already owns it.
func (s *stateUseCase) withLock(ctx context.Context, scope string, fn func(ctx context.Context) error) error {
	held, _ := ctx.Value(heldLocksKey{}).(*heldLocks)
	if held.holds(scope) {
		return fn(ctx)
	}

	l := s.lockFor(scope)
	l.Lock()
	defer l.Unlock()

	return fn(context.WithValue(ctx, heldLocksKey{}, &heldLocks{scope: scope, parent: held}))
}

func (s *stateUseCase) resolve(field stateDomain.Field, opts stateDomain.StorageOptions) (resolvedField, error) {
	policy, err := field.Policy()
	if err != nil {
		return resolvedField{}, err
	}

	location := opts.Location
	if location == stateDomain.LocationDefault {
		location = policy.Location
	}

	secure := policy.Secure || opts.UseSecureStorage
	if opts.KeySuffix != stateDomain.KeySuffixNone && !secure {
		return resolvedField{}, stateDomain.ErrInvalidKeySuffix
	}

	scope := stateDomain.GlobalScope
	userID := ""
	if policy.Scope == stateDomain.ScopeAccount {
		userID = opts.UserID
		if userID == "" {
			userID = s.ActiveUserID()
		}
		if userID == "" {
			return resolvedField{}, stateDomain.ErrNoActiveAccount
		}
		scope = userID
	}

	return resolvedField{
		key:      stateDomain.StorageKey(policy, userID, opts.KeySuffix),
		scope:    scope,
		location: location,
		secure:   secure,
	}, nil
}

// diskFor returns the persistent store for r, never downgrading secure to plain.
func (s *stateUseCase) diskFor(r resolvedField) (StorageService, error) {
	if !r.secure {
		return s.disk, nil
	}
	if s.secure == nil {
		return nil, stateDomain.ErrSecureStorageUnavailable
	}
	return s.secure, nil
}

func (s *stateUseCase) Get(
	ctx context.Context,
	field stateDomain.Field,
	dst any,
	opts stateDomain.StorageOptions,
) (bool, error) {
	r, err := s.resolve(field, opts)
	if err != nil {
		return false, err
	}

	raw, found, err := s.read(ctx, r)
	if err != nil || !found {
		return false, err
	}

	if err := cbor.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode state field %s: %w", field, err)
	}
	return true, nil
}

func (s *stateUseCase) read(ctx context.Context, r resolvedField) ([]byte, bool, error) {
	if r.location.HasMemory() {
		raw, found, err := s.memory.Get(ctx, r.key)
		if err != nil || found {
			return raw, found, err
		}
	}

	if r.location.HasDisk() {
		store, err := s.diskFor(r)
		if err != nil {
			return nil, false, err
		}
		return store.Get(ctx, r.key)
	}

	return nil, false, nil
}

func (s *stateUseCase) Set(
	ctx context.Context,
	field stateDomain.Field,
	value any,
	opts stateDomain.StorageOptions,
) error {
	if value == nil {
		return s.Remove(ctx, field, opts)
	}

	r, err := s.resolve(field, opts)
	if err != nil {
		return err
	}

	raw, err := cbor.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state field %s: %w", field, err)
	}

	return s.withLock(ctx, r.scope, func(ctx context.Context) error {
		if r.location.HasDisk() {
			store, err := s.diskFor(r)
			if err != nil {
				return err
			}
			if err := store.Save(ctx, r.key, raw); err != nil {
				return err
			}
		}
		if r.location.HasMemory() {
			return s.memory.Save(ctx, r.key, raw)
		}
		return nil
	})
}

func (s *stateUseCase) Remove(ctx context.Context, field stateDomain.Field, opts stateDomain.StorageOptions) error {
	r, err := s.resolve(field, opts)
	if err != nil {
		return err
	}

	return s.withLock(ctx, r.scope, func(ctx context.Context) error {
		if r.location.HasMemory() {
			if err := s.memory.Remove(ctx, r.key); err != nil {
				return err
			}
		}
		if r.location.HasDisk() {
			store, err := s.diskFor(r)
			if err != nil {
				return err
			}
			return store.Remove(ctx, r.key)
		}
		return nil
	})
}

func (s *stateUseCase) Update(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if userID == "" {
		userID = s.ActiveUserID()
	}
	if userID == "" {
		return stateDomain.ErrNoActiveAccount
	}
	return s.withLock(ctx, userID, fn)
}

func (s *stateUseCase) Init(ctx context.Context) error {
	var accounts []string
	if err := s.loadRaw(ctx, stateDomain.AuthenticatedAccountsKey, &accounts); err != nil {
		return err
	}

	var active string
	if err := s.loadRaw(ctx, stateDomain.ActiveUserIDKey, &active); err != nil {
		return err
	}
	if !slices.Contains(accounts, active) {
		active = ""
	}

	s.mu.Lock()
	s.accounts = accounts
	s.active = active
	s.mu.Unlock()

	s.logger.Debug("session state loaded", slog.Int("accounts", len(accounts)), slog.String("active_user_id", active))
	return nil
}

func (s *stateUseCase) loadRaw(ctx context.Context, key string, dst any) error {
	raw, found, err := s.disk.Get(ctx, key)
	if err != nil || !found {
		return err
	}
	if err := cbor.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *stateUseCase) saveRaw(ctx context.Context, key string, value any) error {
	raw, err := cbor.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.disk.Save(ctx, key, raw)
}

// persistAccountsLocked writes the account list and active user. Callers hold s.mu.
func (s *stateUseCase) persistAccountsLocked(ctx context.Context) error {
	if err := s.saveRaw(ctx, stateDomain.AuthenticatedAccountsKey, s.accounts); err != nil {
		return err
	}
	if s.active == "" {
		return s.disk.Remove(ctx, stateDomain.ActiveUserIDKey)
	}
	return s.saveRaw(ctx, stateDomain.ActiveUserIDKey, s.active)
}

func (s *stateUseCase) AddAccount(ctx context.Context, account stateDomain.Account) error {
	userID := account.Profile.UserID
	if userID == "" {
		return stateDomain.ErrInvalidAccount
	}
	opts := stateDomain.ForUser(userID)

	err := s.Update(ctx, userID, func(ctx context.Context) error {
		var stored stateDomain.AccountTokens
		if _, err := s.Get(ctx, stateDomain.FieldTokens, &stored, opts); err != nil {
			return err
		}
		if err := s.Set(ctx, stateDomain.FieldProfile, account.Profile, opts); err != nil {
			return err
		}
		if err := s.Set(ctx, stateDomain.FieldTokens, stored.Merge(account.Tokens), opts); err != nil {
			return err
		}
		return s.Set(ctx, stateDomain.FieldLastActive, s.now().UnixMilli(), opts)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if !slices.Contains(s.accounts, userID) {
		s.accounts = append(s.accounts, userID)
	}
	err = s.persistAccountsLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Info("account added", slog.String("user_id", userID))
	return s.SetActiveUser(ctx, userID)
}

func (s *stateUseCase) SetActiveUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	if !slices.Contains(s.accounts, userID) {
		s.mu.Unlock()
		return nil
	}
	s.active = userID
	err := s.persistAccountsLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	return s.broadcast(ctx)
}

func (s *stateUseCase) ActiveUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *stateUseCase) Accounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts)
}

func (s *stateUseCase) GetAccount(ctx context.Context, userID string) (*stateDomain.Account, error) {
	s.mu.RLock()
	known := slices.Contains(s.accounts, userID)
	s.mu.RUnlock()
	if !known {
		return nil, stateDomain.ErrAccountNotFound
	}

	opts := stateDomain.ForUser(userID)
	account := &stateDomain.Account{}

	found, err := s.Get(ctx, stateDomain.FieldProfile, &account.Profile, opts)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, stateDomain.ErrAccountNotFound
	}
	if _, err := s.Get(ctx, stateDomain.FieldTokens, &account.Tokens, opts); err != nil {
		return nil, err
	}
	return account, nil
}

// accountKeys lists every storage key an account can own.
func accountKeys(userID string) []string {
	var keys []string
	for _, field := range stateDomain.AccountFields() {
		policy, _ := field.Policy()
		for _, suffix := range stateDomain.KeySuffixes {
			keys = append(keys, stateDomain.StorageKey(policy, userID, suffix))
		}
	}
	return keys
}

func (s *stateUseCase) Purge(ctx context.Context, userID string) error {
	if userID == "" {
		userID = s.ActiveUserID()
	}
	if userID == "" {
		return stateDomain.ErrNoActiveAccount
	}

	keys := accountKeys(userID)
	err := s.Update(ctx, userID, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return s.memory.Remove(gctx, keys...) })
		g.Go(func() error { return s.disk.Remove(gctx, keys...) })
		if s.secure != nil {
			g.Go(func() error { return s.secure.Remove(gctx, keys...) })
		}
		return g.Wait()
	})
	if err != nil {
		return fmt.Errorf("failed to purge account: %w", err)
	}

	s.mu.Lock()
	s.accounts = slices.DeleteFunc(s.accounts, func(id string) bool { return id == userID })
	if s.active == userID {
		s.active = ""
		if len(s.accounts) > 0 {
			s.active = s.accounts[0]
		}
	}
	err = s.persistAccountsLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Info("account purged", slog.String("user_id", userID))
	return s.broadcast(ctx)
}

func (s *stateUseCase) AccountStatuses(ctx context.Context) (map[string]stateDomain.AuthenticationStatus, error) {
	s.mu.RLock()
	accounts := slices.Clone(s.accounts)
	active := s.active
	s.mu.RUnlock()

	now := s.now()
	statuses := make(map[string]stateDomain.AuthenticationStatus, len(accounts))
	for _, userID := range accounts {
		if userID == active {
			statuses[userID] = stateDomain.AuthenticationStatusActive
			continue
		}
		status, err := s.inactiveStatus(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		statuses[userID] = status
	}
	return statuses, nil
}

// inactiveStatus is Locked once the account's own vault timeout has elapsed
// since its last activity. No timeout or a negative one never locks; a
// missing last-activity mark counts as elapsed.
func (s *stateUseCase) inactiveStatus(
	ctx context.Context,
	userID string,
	now time.Time,
) (stateDomain.AuthenticationStatus, error) {
	opts := stateDomain.ForUser(userID)

	var timeout int
	found, err := s.Get(ctx, stateDomain.FieldVaultTimeout, &timeout, opts)
	if err != nil {
		return stateDomain.AuthenticationStatusLocked, err
	}
	if !found || timeout < 0 {
		return stateDomain.AuthenticationStatusUnlocked, nil
	}

	var lastActive int64
	found, err = s.Get(ctx, stateDomain.FieldLastActive, &lastActive, opts)
	if err != nil {
		return stateDomain.AuthenticationStatusLocked, err
	}
	if !found {
		return stateDomain.AuthenticationStatusLocked, nil
	}

	if now.Sub(time.UnixMilli(lastActive)) >= time.Duration(timeout)*time.Minute {
		return stateDomain.AuthenticationStatusLocked, nil
	}
	return stateDomain.AuthenticationStatusUnlocked, nil
}

func (s *stateUseCase) broadcast(ctx context.Context) error {
	statuses, err := s.AccountStatuses(ctx)
	if err != nil {
		return err
	}
	s.broker.Send(StatusSnapshot{ActiveUserID: s.ActiveUserID(), Statuses: statuses})
	return nil
}

func (s *stateUseCase) Subscribe(buffer int) (<-chan StatusSnapshot, func()) {
	return s.broker.Subscribe(buffer)
}
