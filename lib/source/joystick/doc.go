// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package joystick reads Xbox-class controllers through the Linux
// joystick device interface (/dev/input/jsN). The device is opened
// nonblocking; each poll drains the pending 8-byte event records and
// folds them into a raw report. An absent or unplugged device is
// reported as disconnected, never as an error, and the backend keeps
// trying to reopen it on subsequent polls.
package joystick
