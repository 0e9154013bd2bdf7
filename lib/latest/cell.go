// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package latest

import (
	"context"
	"sync"
)

// Cell is a single-slot, overwrite-always mailbox. One producer calls
// Publish; any number of consumers call Latest or Next concurrently.
// The zero sequence number means nothing has been published yet.
//
// The internal lock is held only long enough to copy the value and
// sequence number, never across I/O.
type Cell[T any] struct {
	mu     sync.Mutex
	wake   *sync.Cond
	value  T
	seq    uint64
	closed bool
}

// NewCell returns an empty cell holding the zero value at sequence 0.
func NewCell[T any]() *Cell[T] {
	c := &Cell[T]{}
	c.wake = sync.NewCond(&c.mu)
	return c
}

// Publish replaces the held value, increments the sequence number, and
// wakes all waiters. Publication is unconditional: the sequence
// advances even when the new value equals the old one. Publishing to a
// closed cell is a no-op.
func (c *Cell[T]) Publish(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.value = v
	c.seq++
	c.wake.Broadcast()
}

// Latest returns the current value and its sequence number without
// blocking. Before the first publish it returns the zero value and
// sequence 0.
func (c *Cell[T]) Latest() (T, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.seq
}

// Next blocks until the sequence number exceeds lastSeen, then returns
// the value at that point. It returns ok=false when the cell is closed
// or ctx is cancelled, signalling the consumer to stop. Spurious
// wakeups are absorbed internally: Next never returns a value the
// caller has already seen.
func (c *Cell[T]) Next(ctx context.Context, lastSeen uint64) (v T, seq uint64, ok bool) {
	// Cancellation must wake the condition variable, not just flip a
	// flag, or a waiter with no producer would block forever.
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.wake.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	for c.seq <= lastSeen && !c.closed && ctx.Err() == nil {
		c.wake.Wait()
	}
	if c.closed || ctx.Err() != nil {
		var zero T
		return zero, 0, false
	}
	return c.value, c.seq, true
}

// Close marks the cell as shut down and permanently wakes all current
// and future waiters. Close is idempotent.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.wake.Broadcast()
}
