// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package source

import "github.com/padscope/padscope/lib/pad"

// Source is a pollable input device. Implementations are used from the
// acquisition goroutine only and need not be safe for concurrent use.
type Source interface {
	// Initialize prepares the backend. Called once before the first
	// Poll. An error here is fatal to startup. A merely absent device
	// is not an error; Poll reports it as disconnected instead.
	Initialize() error

	// Poll returns the current raw report and whether the device is
	// connected. connected=false on every call is a legal steady
	// state (device unplugged), never a reason to stop polling. An
	// error indicates the backend could not be asked at all; the
	// caller treats it the same as disconnected and keeps going.
	Poll() (report pad.RawReport, connected bool, err error)

	// Shutdown releases backend resources. Called once after the last
	// Poll.
	Shutdown()
}
