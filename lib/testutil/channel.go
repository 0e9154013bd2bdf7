// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "time"

// TB is the subset of testing.TB these helpers need. Declared locally
// so the package does not import testing.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Receive reads one value from ch within timeout, or fails the test.
func Receive[T any](t TB, ch <-chan T, timeout time.Duration, what string) T {
	t.Helper()
	select {
	case v, open := <-ch:
		if !open {
			t.Fatalf("channel closed without a value: %s", what)
		}
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, what)
	}
	panic("unreachable")
}

// Closed waits for ch to be closed (or deliver a value) within timeout,
// or fails the test. Use for done channels that signal by closing.
func Closed(t TB, ch <-chan struct{}, timeout time.Duration, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("timed out after %v waiting for close: %s", timeout, what)
	}
}

// Silent asserts that ch delivers nothing for the given duration. The
// duration should be short; this is for catching early wakeups, not
// proving liveness.
func Silent[T any](t TB, ch <-chan T, wait time.Duration, what string) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v: %s", v, what)
	case <-time.After(wait):
	}
}
