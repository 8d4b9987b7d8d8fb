package usecase

import (
	"context"
	"time"

	"github.com/allisson/passvault/internal/metrics"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// vaultTimeoutUseCaseWithMetrics decorates VaultTimeoutUseCase with metrics instrumentation.
type vaultTimeoutUseCaseWithMetrics struct {
	next    VaultTimeoutUseCase
	metrics metrics.BusinessMetrics
}

// NewVaultTimeoutUseCaseWithMetrics wraps a VaultTimeoutUseCase with metrics recording.
func NewVaultTimeoutUseCaseWithMetrics(useCase VaultTimeoutUseCase, m metrics.BusinessMetrics) VaultTimeoutUseCase {
	return &vaultTimeoutUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (v *vaultTimeoutUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, v.metrics, metrics.DomainVault, operation, metrics.StatusOf(err), start)
}

func (v *vaultTimeoutUseCaseWithMetrics) Start(ctx context.Context) {
	v.next.Start(ctx)
}

func (v *vaultTimeoutUseCaseWithMetrics) Stop() {
	v.next.Stop()
}

// CheckTimeout records metrics for timeout checks.
func (v *vaultTimeoutUseCaseWithMetrics) CheckTimeout(ctx context.Context) error {
	start := time.Now()
	err := v.next.CheckTimeout(ctx)
	v.record(ctx, "check_timeout", start, err)
	return err
}

func (v *vaultTimeoutUseCaseWithMetrics) ShouldLock(ctx context.Context, userID string) (bool, error) {
	return v.next.ShouldLock(ctx, userID)
}

func (v *vaultTimeoutUseCaseWithMetrics) IsLocked(ctx context.Context, userID string) (bool, error) {
	return v.next.IsLocked(ctx, userID)
}

// Lock records metrics for vault locks.
func (v *vaultTimeoutUseCaseWithMetrics) Lock(ctx context.Context, userID string) error {
	start := time.Now()
	err := v.next.Lock(ctx, userID)
	v.record(ctx, "lock", start, err)
	return err
}

// LogOut records metrics for timeout logouts.
func (v *vaultTimeoutUseCaseWithMetrics) LogOut(ctx context.Context, userID string) error {
	start := time.Now()
	err := v.next.LogOut(ctx, userID)
	v.record(ctx, "logout", start, err)
	return err
}

func (v *vaultTimeoutUseCaseWithMetrics) SetVaultTimeoutOptions(
	ctx context.Context,
	userID string,
	timeout *int,
	action stateDomain.VaultTimeoutAction,
) error {
	return v.next.SetVaultTimeoutOptions(ctx, userID, timeout, action)
}
