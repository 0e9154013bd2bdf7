// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package source defines the input-source contract the acquisition
// loop polls against. The core never depends on a concrete device
// technology: any backend that can answer "give me the current raw
// report" implements Source. The joystick subpackage provides the
// Linux device backend; Script provides a deterministic source for
// tests.
package source
