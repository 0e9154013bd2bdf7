// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package acquire runs the fixed-rate acquisition loop: poll the input
// source, normalize the raw report, publish the snapshot into the
// latest-value cell, and hand the same snapshot to the renderer.
package acquire
