package session

import (
	"context"
	"time"
)

// Ticker is the part of *time.Ticker the watcher needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// startWatcher replaces any running watcher. mu must be held.
func (m *Manager) startWatcher() {
	m.stopWatcher()

	ctx, cancel := context.WithCancel(context.Background())
	m.stop = cancel
	t := m.newTicker(m.interval)

	m.wg.Add(1)
	go m.watch(ctx, t)
}

// stopWatcher must be called with mu held. It does not wait; Close does.
func (m *Manager) stopWatcher() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

func (m *Manager) watch(ctx context.Context, t Ticker) {
	defer m.wg.Done()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			if ctx.Err() != nil {
				return
			}
			// logout cancels ctx, so the check runs detached from it.
			if m.CheckExpiration(context.WithoutCancel(ctx)) {
				return
			}
		}
	}
}
