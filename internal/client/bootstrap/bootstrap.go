// Package bootstrap reconciles the session store with the server once per
// process start. A fresh process has no in-memory session even when the
// server still holds one for its cookie, so a probe runs in the background
// without blocking startup; its outcome is logged, never surfaced.
package bootstrap

import (
	"context"
	"log/slog"
	"sync"
)

// Prober is the probe operation of the auth gateway.
type Prober interface {
	Probe(ctx context.Context) bool
}

// Bootstrap triggers the startup probe exactly once.
type Bootstrap struct {
	prober Prober
	done   chan struct{}
	once   sync.Once
}

func New(prober Prober) *Bootstrap {
	return &Bootstrap{
		prober: prober,
		done:   make(chan struct{}),
	}
}

// Start launches the probe in the background. Subsequent calls are no-ops.
func (b *Bootstrap) Start(ctx context.Context) {
	b.once.Do(func() {
		go func() {
			defer close(b.done)
			loggedIn := b.prober.Probe(ctx)
			slog.Debug("startup session probe settled", "logged_in", loggedIn)
		}()
	})
}

// Wait blocks until the probe has settled or the context is cancelled.
// Start must have been called first.
func (b *Bootstrap) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
