// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides channel helpers for tests that coordinate
// goroutines: receive-with-timeout, wait-for-close, and
// assert-no-value. The timeouts are safety valves so a broken test
// fails with a message instead of hanging the whole run.
package testutil
