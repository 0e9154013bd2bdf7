// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction. Production
// code accepts a Clock instead of calling the time package directly;
// tests inject Fake() and advance time deterministically.
//
// Components that tick or wait on deadlines take a Clock field:
//
//	loop := &acquire.Loop{Clock: clock.Real(), ...}
//
// In tests:
//
//	c := clock.Fake(time.Unix(0, 0))
//	// start the goroutine under test, then
//	c.AwaitWaiters(1)          // it has registered its ticker
//	c.Advance(100 * time.Millisecond) // fire one tick
//
// AwaitWaiters removes the race between a goroutine registering its
// timer and the test advancing the clock.
package clock
