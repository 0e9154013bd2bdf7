// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package latest provides a single-slot mailbox holding the most
// recently published value. Publication always overwrites: a slow or
// absent consumer misses intermediate values and only ever observes
// the newest one. Each publish increments a sequence number and wakes
// every blocked waiter.
package latest
