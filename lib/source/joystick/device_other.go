// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package joystick

import (
	"errors"
	"log/slog"

	"github.com/padscope/padscope/lib/pad"
)

// DefaultDevice matches the Linux build so flag defaults are uniform.
const DefaultDevice = "/dev/input/js0"

// ErrUnsupported is returned from Initialize on platforms without the
// Linux joystick interface.
var ErrUnsupported = errors.New("joystick: unsupported platform")

// Device is a stub on non-Linux platforms. Initialize fails; the
// binary still compiles everywhere so the rest of the pipeline can be
// developed and tested off-target.
type Device struct{}

func Open(path string, logger *slog.Logger) *Device { return &Device{} }

func (d *Device) Initialize() error { return ErrUnsupported }

func (d *Device) Poll() (pad.RawReport, bool, error) { return pad.RawReport{}, false, nil }

func (d *Device) Shutdown() {}
