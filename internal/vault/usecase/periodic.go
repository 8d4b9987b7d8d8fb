package usecase

import (
	"context"
	"sync"
	"time"
)

// periodic runs fn on a ticker until stopped. At most one run loop exists.
type periodic struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// start arms the loop and reports whether it was armed by this call. The
// loop outlives ctx's cancellation but keeps its values.
func (p *periodic) start(ctx context.Context, interval time.Duration, fn func(ctx context.Context) bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		defer p.disarm(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !fn(ctx) {
					return
				}
			}
		}
	}()
	return true
}

// disarm clears the slot if it still belongs to the loop that owns done.
func (p *periodic) disarm(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == done {
		p.cancel()
		p.cancel = nil
		p.done = nil
	}
}

// stop cancels the loop and waits for it to exit.
func (p *periodic) stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *periodic) armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
