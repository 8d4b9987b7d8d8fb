package usecase

import (
	"context"
	"crypto/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
	"github.com/allisson/passvault/internal/messaging"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
	"github.com/allisson/passvault/internal/state/repository"
	"github.com/allisson/passvault/internal/testutil"
)

type stateFixture struct {
	memory *repository.MemoryStorage
	disk   *repository.MemoryStorage
	state  *stateUseCase
	now    time.Time
}

func newStateFixture(t *testing.T, withSecure bool) *stateFixture {
	t.Helper()

	f := &stateFixture{
		memory: repository.NewMemoryStorage(false),
		disk:   repository.NewMemoryStorage(false),
		now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var secure StorageService
	if withSecure {
		secure = repository.NewSecureStorage(
			repository.NewMemoryStorage(false),
			testutil.NewLocalKeeper(t),
			cryptoService.NewAEADManager(rand.Reader),
			cryptoDomain.AESGCM,
		)
	}

	broker := messaging.NewBroker[StatusSnapshot]()
	t.Cleanup(broker.Close)

	f.state = NewStateUseCase(f.memory, f.disk, secure, broker, nil).(*stateUseCase)
	f.state.now = func() time.Time { return f.now }
	return f
}

func (f *stateFixture) addAccount(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.state.AddAccount(context.Background(), stateDomain.Account{
		Profile: stateDomain.AccountProfile{UserID: userID, Email: userID + "@example.com"},
		Tokens:  stateDomain.AccountTokens{AccessToken: "access-" + userID, RefreshToken: "refresh-" + userID},
	}))
}

func TestStateUseCase_Locations(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MemoryFieldNeverTouchesDisk", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		diskBefore := f.disk.Len()

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldMasterKey, []byte("key"), stateDomain.StorageOptions{}))

		assert.Equal(t, diskBefore, f.disk.Len())
		_, found, err := f.memory.Get(ctx, "user-1_cryptoMasterKey")
		require.NoError(t, err)
		assert.True(t, found)

		got, found, err := GetValue[[]byte](ctx, f.state, stateDomain.FieldMasterKey, stateDomain.StorageOptions{})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("key"), got)
	})

	t.Run("Success_DiskFieldNeverTouchesMemory", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldEncryptedEncKey, "2.iv|data|mac", stateDomain.StorageOptions{}))

		_, found, err := f.memory.Get(ctx, "user-1_encryptedCryptoSymmetricKey")
		require.NoError(t, err)
		assert.False(t, found)
		_, found, err = f.disk.Get(ctx, "user-1_encryptedCryptoSymmetricKey")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Success_BothReadsThroughWithoutWriteBack", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		opts := stateDomain.ForUser("user-1").WithLocation(stateDomain.LocationDisk)

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldKeyHash, "hash", opts))

		got, found, err := GetValue[string](ctx, f.state, stateDomain.FieldKeyHash, stateDomain.ForUser("user-1"))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "hash", got)

		_, found, err = f.memory.Get(ctx, "user-1_keyHash")
		require.NoError(t, err)
		assert.False(t, found, "read-through must not populate memory")
	})

	t.Run("Success_BothWritesBoth", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldKeyHash, "hash", stateDomain.StorageOptions{}))

		_, inMemory, _ := f.memory.Get(ctx, "user-1_keyHash")
		_, onDisk, _ := f.disk.Get(ctx, "user-1_keyHash")
		assert.True(t, inMemory)
		assert.True(t, onDisk)
	})

	t.Run("Success_NilValueRemoves", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldKeyHash, "hash", stateDomain.StorageOptions{}))

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldKeyHash, nil, stateDomain.StorageOptions{}))

		_, found, err := GetValue[string](ctx, f.state, stateDomain.FieldKeyHash, stateDomain.StorageOptions{})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success_GlobalFieldWithoutActiveUser", func(t *testing.T) {
		f := newStateFixture(t, false)

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldTheme, "dark", stateDomain.StorageOptions{}))

		_, found, err := f.disk.Get(ctx, "global_theme")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Error_NoActiveAccount", func(t *testing.T) {
		f := newStateFixture(t, false)

		err := f.state.Set(ctx, stateDomain.FieldProfile, "x", stateDomain.StorageOptions{})
		assert.ErrorIs(t, err, stateDomain.ErrNoActiveAccount)
	})

	t.Run("Error_KeySuffixOnPlainField", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		err := f.state.Set(ctx, stateDomain.FieldKeyHash, "x",
			stateDomain.StorageOptions{KeySuffix: stateDomain.KeySuffixAuto})
		assert.ErrorIs(t, err, stateDomain.ErrInvalidKeySuffix)
	})

	t.Run("Error_UnknownField", func(t *testing.T) {
		f := newStateFixture(t, false)

		_, err := f.state.Get(ctx, stateDomain.Field(999), new(string), stateDomain.StorageOptions{})
		assert.ErrorIs(t, err, stateDomain.ErrUnknownField)
	})
}

func TestStateUseCase_SecureStorage(t *testing.T) {
	ctx := context.Background()
	opts := stateDomain.ForUser("user-1").WithKeySuffix(stateDomain.KeySuffixAuto)

	t.Run("Error_UnavailableNeverDowngrades", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		diskBefore := f.disk.Len()

		err := f.state.Set(ctx, stateDomain.FieldStoredMasterKey, []byte("key"), opts)
		assert.ErrorIs(t, err, stateDomain.ErrSecureStorageUnavailable)
		assert.Equal(t, diskBefore, f.disk.Len())

		_, err = f.state.Get(ctx, stateDomain.FieldStoredMasterKey, new([]byte), opts)
		assert.ErrorIs(t, err, stateDomain.ErrSecureStorageUnavailable)
		assert.False(t, f.state.HasSecureStorage())
	})

	t.Run("Error_UseSecureStorageOnPlainField", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		err := f.state.Set(ctx, stateDomain.FieldEncryptedEncKey, "x",
			stateDomain.StorageOptions{UseSecureStorage: true})
		assert.ErrorIs(t, err, stateDomain.ErrSecureStorageUnavailable)
	})

	t.Run("Success_StoredInSecureBackend", func(t *testing.T) {
		f := newStateFixture(t, true)
		f.addAccount(t, "user-1")
		diskBefore := f.disk.Len()

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldStoredMasterKey, []byte("key"), opts))

		assert.Equal(t, diskBefore, f.disk.Len())
		got, found, err := GetValue[[]byte](ctx, f.state, stateDomain.FieldStoredMasterKey, opts)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("key"), got)

		_, found, err = GetValue[[]byte](ctx, f.state, stateDomain.FieldStoredMasterKey,
			opts.WithKeySuffix(stateDomain.KeySuffixBiometric))
		require.NoError(t, err)
		assert.False(t, found, "suffixes are distinct slots")
	})
}

func TestStateUseCase_AddAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MergesStoredTokens", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		require.NoError(t, f.state.AddAccount(ctx, stateDomain.Account{
			Profile: stateDomain.AccountProfile{UserID: "user-1", Email: "new@example.com"},
			Tokens:  stateDomain.AccountTokens{AccessToken: "access-2"},
		}))

		account, err := f.state.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", account.Profile.Email)
		assert.Equal(t, "access-2", account.Tokens.AccessToken)
		assert.Equal(t, "refresh-user-1", account.Tokens.RefreshToken)
		assert.Equal(t, []string{"user-1"}, f.state.Accounts())
	})

	t.Run("Success_BecomesActiveAndBroadcasts", func(t *testing.T) {
		f := newStateFixture(t, false)
		updates, unsubscribe := f.state.Subscribe(4)
		defer unsubscribe()

		f.addAccount(t, "user-1")
		f.addAccount(t, "user-2")

		assert.Equal(t, "user-2", f.state.ActiveUserID())
		assert.Equal(t, []string{"user-1", "user-2"}, f.state.Accounts())

		<-updates
		last := <-updates
		assert.Equal(t, "user-2", last.ActiveUserID)
		assert.Equal(t, stateDomain.AuthenticationStatusActive, last.Statuses["user-2"])
	})

	t.Run("Error_MissingUserID", func(t *testing.T) {
		f := newStateFixture(t, false)

		err := f.state.AddAccount(ctx, stateDomain.Account{})
		assert.ErrorIs(t, err, stateDomain.ErrInvalidAccount)
	})
}

func TestStateUseCase_AccountStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SwitchRecomputesStatus", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-b")
		f.addAccount(t, "user-a")

		require.NoError(t, f.state.Set(ctx, stateDomain.FieldVaultTimeout, 15, stateDomain.ForUser("user-a")))
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldVaultTimeout, 5, stateDomain.ForUser("user-b")))
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldLastActive,
			f.now.Add(-10*time.Minute).UnixMilli(), stateDomain.ForUser("user-b")))

		require.NoError(t, f.state.SetActiveUser(ctx, "user-a"))
		statuses, err := f.state.AccountStatuses(ctx)
		require.NoError(t, err)
		assert.Equal(t, stateDomain.AuthenticationStatusActive, statuses["user-a"])
		assert.Equal(t, stateDomain.AuthenticationStatusLocked, statuses["user-b"])

		require.NoError(t, f.state.SetActiveUser(ctx, "user-b"))
		statuses, err = f.state.AccountStatuses(ctx)
		require.NoError(t, err)
		assert.Equal(t, stateDomain.AuthenticationStatusActive, statuses["user-b"])
		assert.Equal(t, stateDomain.AuthenticationStatusUnlocked, statuses["user-a"])
	})

	t.Run("Success_InactiveRules", func(t *testing.T) {
		f := newStateFixture(t, false)
		for _, id := range []string{"never", "negative", "no-activity", "active"} {
			f.addAccount(t, id)
		}
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldVaultTimeout, -1, stateDomain.ForUser("negative")))
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldVaultTimeout, 5, stateDomain.ForUser("no-activity")))
		require.NoError(t, f.state.Remove(ctx, stateDomain.FieldLastActive, stateDomain.ForUser("no-activity")))

		statuses, err := f.state.AccountStatuses(ctx)
		require.NoError(t, err)
		assert.Equal(t, stateDomain.AuthenticationStatusUnlocked, statuses["never"])
		assert.Equal(t, stateDomain.AuthenticationStatusUnlocked, statuses["negative"])
		assert.Equal(t, stateDomain.AuthenticationStatusLocked, statuses["no-activity"])
		assert.Equal(t, stateDomain.AuthenticationStatusActive, statuses["active"])
	})

	t.Run("Success_UnknownUserIsNoOp", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		require.NoError(t, f.state.SetActiveUser(ctx, "ghost"))
		assert.Equal(t, "user-1", f.state.ActiveUserID())
	})
}

func TestStateUseCase_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ActivatesNextAccount", func(t *testing.T) {
		f := newStateFixture(t, true)
		f.addAccount(t, "user-1")
		f.addAccount(t, "user-2")
		opts := stateDomain.ForUser("user-2")
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldMasterKey, []byte("k"), opts))
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldStoredMasterKey, []byte("k"),
			opts.WithKeySuffix(stateDomain.KeySuffixAuto)))

		require.NoError(t, f.state.Purge(ctx, ""))

		assert.Equal(t, "user-1", f.state.ActiveUserID())
		assert.Equal(t, []string{"user-1"}, f.state.Accounts())
		for _, field := range []stateDomain.Field{stateDomain.FieldMasterKey, stateDomain.FieldProfile} {
			found, err := f.state.Get(ctx, field, new(any), opts)
			require.NoError(t, err)
			assert.False(t, found, field.String())
		}
		found, err := f.state.Get(ctx, stateDomain.FieldStoredMasterKey, new([]byte),
			opts.WithKeySuffix(stateDomain.KeySuffixAuto))
		require.NoError(t, err)
		assert.False(t, found)

		_, err = f.state.GetAccount(ctx, "user-2")
		assert.ErrorIs(t, err, stateDomain.ErrAccountNotFound)
	})

	t.Run("Success_LastAccountClearsActive", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		require.NoError(t, f.state.Purge(ctx, "user-1"))

		assert.Empty(t, f.state.ActiveUserID())
		_, found, err := f.disk.Get(ctx, stateDomain.ActiveUserIDKey)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success_WaitingWriterKeepsScopeLock", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		before := f.state.lockFor("user-1")

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			done <- f.state.Update(ctx, "user-1", func(ctx context.Context) error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		purged := make(chan error, 1)
		go func() { purged <- f.state.Purge(ctx, "user-1") }()
		close(release)
		require.NoError(t, <-done)
		require.NoError(t, <-purged)

		assert.Same(t, before, f.state.lockFor("user-1"))

		var inside, maxInside int32
		var mu sync.Mutex
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, f.state.Update(ctx, "user-1", func(context.Context) error {
					mu.Lock()
					inside++
					maxInside = max(maxInside, inside)
					mu.Unlock()
					time.Sleep(time.Millisecond)
					mu.Lock()
					inside--
					mu.Unlock()
					return nil
				}))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), maxInside)
	})

	t.Run("Error_NoActiveAccount", func(t *testing.T) {
		f := newStateFixture(t, false)
		assert.ErrorIs(t, f.state.Purge(ctx, ""), stateDomain.ErrNoActiveAccount)
	})
}

func TestStateUseCase_Init(t *testing.T) {
	ctx := context.Background()
	f := newStateFixture(t, false)
	f.addAccount(t, "user-1")
	f.addAccount(t, "user-2")
	require.NoError(t, f.state.SetActiveUser(ctx, "user-1"))

	restarted := NewStateUseCase(repository.NewMemoryStorage(false), f.disk, nil, messaging.NewBroker[StatusSnapshot](), nil)
	require.NoError(t, restarted.Init(ctx))

	assert.Equal(t, "user-1", restarted.ActiveUserID())
	assert.Equal(t, []string{"user-1", "user-2"}, restarted.Accounts())

	account, err := restarted.GetAccount(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "user-2@example.com", account.Profile.Email)
}

func TestUpdateValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ConcurrentIncrementsAreNotLost", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")
		opts := stateDomain.ForUser("user-1")

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := UpdateValue(ctx, f.state, stateDomain.FieldVaultTimeout, opts,
					func(current int, _ bool) (int, error) { return current + 1, nil })
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, _, err := GetValue[int](ctx, f.state, stateDomain.FieldVaultTimeout, opts)
		require.NoError(t, err)
		assert.Equal(t, 50, got)
	})

	t.Run("Success_GlobalField", func(t *testing.T) {
		f := newStateFixture(t, false)

		err := UpdateValue(ctx, f.state, stateDomain.FieldTwoFactorTokens, stateDomain.StorageOptions{},
			func(current map[string]string, found bool) (map[string]string, error) {
				assert.False(t, found)
				return map[string]string{"user@example.com": "remember-token"}, nil
			})
		require.NoError(t, err)

		got, found, err := GetValue[map[string]string](ctx, f.state, stateDomain.FieldTwoFactorTokens,
			stateDomain.StorageOptions{})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "remember-token", got["user@example.com"])
	})

	t.Run("Error_FnFails", func(t *testing.T) {
		f := newStateFixture(t, false)
		f.addAccount(t, "user-1")

		err := UpdateValue(ctx, f.state, stateDomain.FieldVaultTimeout, stateDomain.StorageOptions{},
			func(int, bool) (int, error) { return 0, assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
	})
}
