package usecase

import (
	"context"
	"log/slog"
	"time"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
	stateUsecase "github.com/allisson/passvault/internal/state/usecase"
)

// minIdleBeforeReload is how long the active account must be idle before a reload.
const minIdleBeforeReload = 5 * time.Second

// ReloadFunc restarts the host process.
type ReloadFunc func(ctx context.Context) error

type processReloadUseCase struct {
	interval time.Duration
	state    stateUsecase.StateUseCase
	views    ViewChecker
	reload   ReloadFunc
	logger   *slog.Logger
	now      func() time.Time
	timer    periodic
}

// NewProcessReloadUseCase creates the reload watchdog. views is optional.
func NewProcessReloadUseCase(
	interval time.Duration,
	state stateUsecase.StateUseCase,
	views ViewChecker,
	reload ReloadFunc,
	logger *slog.Logger,
) ProcessReloadUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &processReloadUseCase{
		interval: interval,
		state:    state,
		views:    views,
		reload:   reload,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *processReloadUseCase) Start(ctx context.Context) error {
	if p.timer.armed() {
		return nil
	}

	keeps, err := p.anyUnlockPath(ctx)
	if err != nil {
		return err
	}
	if keeps {
		p.logger.Debug("process reload skipped, an account keeps a pin or biometric unlock")
		return nil
	}

	if p.timer.start(ctx, p.interval, p.tick) {
		p.logger.Info("process reload armed", slog.Duration("interval", p.interval))
	}
	return nil
}

func (p *processReloadUseCase) Cancel() {
	p.timer.stop()
}

func (p *processReloadUseCase) Armed() bool {
	return p.timer.armed()
}

// tick reloads once nothing is in use and reports whether to keep waiting.
func (p *processReloadUseCase) tick(ctx context.Context) bool {
	if p.views != nil && p.views.IsViewOpen(ctx) {
		return true
	}

	if userID := p.state.ActiveUserID(); userID != "" {
		lastActive, found, err := stateUsecase.GetValue[int64](
			ctx, p.state, stateDomain.FieldLastActive, stateDomain.ForUser(userID))
		if err != nil {
			p.logger.Error("process reload check failed", slog.Any("error", err))
			return true
		}
		if found && p.now().Sub(time.UnixMilli(lastActive)) < minIdleBeforeReload {
			return true
		}
	}

	p.logger.Info("reloading process")
	if err := p.reload(ctx); err != nil {
		p.logger.Error("process reload failed", slog.Any("error", err))
	}
	return false
}

// anyUnlockPath reports whether any account can unlock with a PIN or biometrics.
func (p *processReloadUseCase) anyUnlockPath(ctx context.Context) (bool, error) {
	for _, userID := range p.state.Accounts() {
		keeps, err := keepsUnlockPath(ctx, p.state, userID)
		if err != nil || keeps {
			return keeps, err
		}
	}
	return false, nil
}
