// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package lifecycle coordinates graceful shutdown with a bounded grace
// period. Component goroutines are registered in a Group and cancelled
// cooperatively through their context; after shutdown is requested the
// Group waits a fixed grace period for them to exit. If the grace
// period elapses first, the caller terminates the process
// unconditionally: a consumer hung mid-write must never prevent
// process exit.
package lifecycle
