package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
	"github.com/allisson/passvault/internal/state/repository"
	stateUsecase "github.com/allisson/passvault/internal/state/usecase"
	"github.com/allisson/passvault/internal/vault/usecase/mocks"
)

type reloadFixture struct {
	state   stateUsecase.StateUseCase
	views   *mocks.MockViewChecker
	reloads atomic.Int32
	reload  *processReloadUseCase
}

func newReloadFixture(t *testing.T, reloadErr error) *reloadFixture {
	t.Helper()
	state := stateUsecase.NewStateUseCase(
		repository.NewMemoryStorage(false), repository.NewMemoryStorage(false), nil, nil, nil)
	require.NoError(t, state.AddAccount(context.Background(), stateDomain.Account{
		Profile: stateDomain.AccountProfile{UserID: testUserID, Email: "user@example.com"},
	}))

	f := &reloadFixture{state: state, views: &mocks.MockViewChecker{}}
	f.reload = NewProcessReloadUseCase(5*time.Millisecond, state, f.views, func(context.Context) error {
		f.reloads.Add(1)
		return reloadErr
	}, nil).(*processReloadUseCase)
	t.Cleanup(f.reload.Cancel)
	return f
}

func (f *reloadFixture) idleFor(t *testing.T, idle time.Duration) {
	t.Helper()
	require.NoError(t, f.state.Set(context.Background(), stateDomain.FieldLastActive,
		time.Now().Add(-idle).UnixMilli(), stateDomain.ForUser(testUserID)))
}

func TestProcessReloadUseCase_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReloadsOnce", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(false)
		f.idleFor(t, time.Minute)

		require.NoError(t, f.reload.Start(ctx))
		assert.Eventually(t, func() bool { return f.reloads.Load() == 1 }, time.Second, 5*time.Millisecond)
		assert.Eventually(t, func() bool { return !f.reload.Armed() }, time.Second, 5*time.Millisecond)

		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, int32(1), f.reloads.Load())
	})

	t.Run("Success_ReloadErrorDisarms", func(t *testing.T) {
		f := newReloadFixture(t, errors.New("exec failed"))
		f.views.On("IsViewOpen", mock.Anything).Return(false)
		f.idleFor(t, time.Minute)

		require.NoError(t, f.reload.Start(ctx))
		assert.Eventually(t, func() bool { return !f.reload.Armed() }, time.Second, 5*time.Millisecond)
		assert.Equal(t, int32(1), f.reloads.Load())
	})

	t.Run("Success_NoActiveAccount", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(false)
		require.NoError(t, f.state.Purge(ctx, testUserID))

		require.NoError(t, f.reload.Start(ctx))
		assert.Eventually(t, func() bool { return f.reloads.Load() == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Success_WaitsWhileViewOpen", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(true)
		f.idleFor(t, time.Minute)

		require.NoError(t, f.reload.Start(ctx))
		time.Sleep(30 * time.Millisecond)

		assert.Zero(t, f.reloads.Load())
		assert.True(t, f.reload.Armed())
	})

	t.Run("Success_WaitsForRecentActivity", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(false)
		f.idleFor(t, time.Second)

		require.NoError(t, f.reload.Start(ctx))
		time.Sleep(30 * time.Millisecond)
		assert.Zero(t, f.reloads.Load())

		f.idleFor(t, time.Minute)
		assert.Eventually(t, func() bool { return f.reloads.Load() == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Success_SkippedWithPin", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldProtectedPin, "2.pin", stateDomain.ForUser(testUserID)))

		require.NoError(t, f.reload.Start(ctx))
		assert.False(t, f.reload.Armed())
	})

	t.Run("Success_SkippedWithBiometric", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		require.NoError(t, f.state.Set(ctx, stateDomain.FieldBiometricUnlock, true, stateDomain.ForUser(testUserID)))

		require.NoError(t, f.reload.Start(ctx))
		assert.False(t, f.reload.Armed())
	})

	t.Run("Success_RearmIsNoop", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(true)

		require.NoError(t, f.reload.Start(ctx))
		require.NoError(t, f.reload.Start(ctx))
		assert.True(t, f.reload.Armed())
	})
}

func TestProcessReloadUseCase_Cancel(t *testing.T) {
	t.Run("Success_Disarms", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.views.On("IsViewOpen", mock.Anything).Return(true)

		require.NoError(t, f.reload.Start(context.Background()))
		f.reload.Cancel()

		assert.False(t, f.reload.Armed())
		assert.Zero(t, f.reloads.Load())
	})

	t.Run("Success_NotArmed", func(t *testing.T) {
		f := newReloadFixture(t, nil)
		f.reload.Cancel()
		assert.False(t, f.reload.Armed())
	})
}
