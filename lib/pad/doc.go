// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package pad defines the canonical controller state model: the raw
// report layout produced by input backends, the normalized State
// snapshot consumed by the renderer and the feed, and the pure
// normalization function mapping one to the other.
package pad
