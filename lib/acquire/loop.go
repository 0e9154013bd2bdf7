// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/padscope/padscope/lib/clock"
	"github.com/padscope/padscope/lib/latest"
	"github.com/padscope/padscope/lib/pad"
	"github.com/padscope/padscope/lib/source"
)

// DefaultRateHz is the reference acquisition rate. Console-only
// deployments may configure a faster rate; the tick rate is a
// configuration value, not a protocol constant.
const DefaultRateHz = 10

// Loop polls an input source at a fixed rate and publishes the
// normalized snapshot. Exactly one State is produced per tick,
// unconditionally, even when nothing changed.
type Loop struct {
	Source source.Source
	Cell   *latest.Cell[pad.State]
	Clock  clock.Clock

	// RateHz is ticks per second. Zero means DefaultRateHz.
	RateHz int

	// Render, when non-nil, receives each tick's snapshot after it is
	// published. Render runs on the loop goroutine; it must not block
	// beyond a single terminal write.
	Render func(pad.State)

	Logger *slog.Logger

	// wasConnected tracks the last tick's connection state so edges
	// are logged once, not per tick. Nil until the first tick.
	wasConnected *bool
}

// Run initializes the source and ticks until ctx is cancelled. The
// loop never initiates shutdown itself: poll failures and a
// disconnected device both publish a well-formed disconnected snapshot
// and carry on.
func (l *Loop) Run(ctx context.Context) error {
	rate := l.RateHz
	if rate <= 0 {
		rate = DefaultRateHz
	}

	if err := l.Source.Initialize(); err != nil {
		return fmt.Errorf("initializing input source: %w", err)
	}
	defer l.Source.Shutdown()

	// First tick immediately, then on schedule. The ticker fires on
	// absolute boundaries, so a slow tick does not push every later
	// tick back (bounded jitter, no cumulative skew).
	l.tick()
	ticker := l.Clock.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) tick() {
	report, connected, err := l.Source.Poll()
	if err != nil {
		// A backend that cannot be asked is the same as an unplugged
		// device: publish disconnected and keep polling.
		connected = false
	}
	state := pad.Normalize(report, connected)

	l.logTransition(state.Connected, err)

	l.Cell.Publish(state)
	if l.Render != nil {
		l.Render(state)
	}
}

// logTransition logs connect/disconnect edges once instead of spamming
// every tick.
func (l *Loop) logTransition(connected bool, err error) {
	if l.wasConnected == nil {
		l.wasConnected = new(bool)
		*l.wasConnected = !connected // force a log line on the first tick
	}
	if connected == *l.wasConnected {
		return
	}
	*l.wasConnected = connected
	if connected {
		l.Logger.Info("controller connected")
	} else if err != nil {
		l.Logger.Info("controller disconnected", "error", err)
	} else {
		l.Logger.Info("controller disconnected")
	}
}
