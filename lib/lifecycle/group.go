// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"log/slog"
	"sync"
	"time"

	"github.com/padscope/padscope/lib/clock"
)

// DefaultGracePeriod is the reference bound on graceful shutdown.
const DefaultGracePeriod = time.Second

// Group runs component goroutines and joins them with a bounded grace
// period. Cancellation is cooperative: the caller cancels the
// components' shared context, then calls WaitGraceful.
type Group struct {
	clock  clock.Clock
	grace  time.Duration
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewGroup creates a Group. grace <= 0 means DefaultGracePeriod.
func NewGroup(clk clock.Clock, grace time.Duration, logger *slog.Logger) *Group {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Group{clock: clk, grace: grace, logger: logger}
}

// Go runs fn on a new goroutine. A non-nil return is logged as a
// component failure; components are expected to handle their own
// recoverable conditions and return nil on cooperative shutdown.
func (g *Group) Go(name string, fn func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(); err != nil {
			g.logger.Error("component failed", "component", name, "error", err)
		}
	}()
}

// WaitGraceful blocks until every registered goroutine has returned or
// the grace period elapses, whichever comes first. Returns true on a
// clean join. On false one or more components are still running, the
// process state is undefined, and the caller must exit
// unconditionally.
//
// The grace period starts at the call, which is when shutdown has been
// requested, not when the Group was created.
func (g *Group) WaitGraceful() bool {
	joined := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(joined)
	}()

	select {
	case <-joined:
		return true
	case <-g.clock.After(g.grace):
		g.logger.Warn("grace period elapsed with components still running",
			"grace", g.grace)
		return false
	}
}
