// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats controller snapshots as a fixed-layout text
// dashboard and writes it flicker-free to a terminal. Frames are built
// completely in memory and written in a single call after repositioning
// the cursor to a fixed home coordinate, so a reader never observes a
// half-updated screen.
package render
