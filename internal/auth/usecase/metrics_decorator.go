package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/passvault/internal/auth/domain"
	"github.com/allisson/passvault/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// resultStatus maps a login outcome to a metric status.
func resultStatus(result *authDomain.AuthResult, err error) string {
	switch {
	case err != nil:
		return metrics.StatusError
	case result.RequiresCaptcha():
		return "captcha_required"
	case result.TwoFactorRequired():
		return "two_factor_required"
	}
	return metrics.StatusSuccess
}

func (a *authUseCaseWithMetrics) record(ctx context.Context, operation, status string, start time.Time) {
	metrics.Observe(ctx, a.metrics, metrics.DomainAuth, operation, status, start)
}

// LogIn records metrics for login attempts.
func (a *authUseCaseWithMetrics) LogIn(
	ctx context.Context,
	creds authDomain.Credentials,
) (*authDomain.AuthResult, error) {
	start := time.Now()
	result, err := a.next.LogIn(ctx, creds)
	a.record(ctx, "login", resultStatus(result, err), start)
	return result, err
}

// LogInTwoFactor records metrics for two-factor continuations.
func (a *authUseCaseWithMetrics) LogInTwoFactor(
	ctx context.Context,
	twoFactor authDomain.TwoFactorInput,
	captchaToken string,
) (*authDomain.AuthResult, error) {
	start := time.Now()
	result, err := a.next.LogInTwoFactor(ctx, twoFactor, captchaToken)
	a.record(ctx, "login_two_factor", resultStatus(result, err), start)
	return result, err
}

func (a *authUseCaseWithMetrics) ClearPending() {
	a.next.ClearPending()
}

func (a *authUseCaseWithMetrics) HasPending() bool {
	return a.next.HasPending()
}

// LogOut records metrics for logouts.
func (a *authUseCaseWithMetrics) LogOut(ctx context.Context, userID string, expired bool) error {
	start := time.Now()
	err := a.next.LogOut(ctx, userID, expired)
	a.record(ctx, "logout", metrics.StatusOf(err), start)
	return err
}
