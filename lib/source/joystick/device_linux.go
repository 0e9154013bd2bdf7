// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package joystick

import (
	"encoding/binary"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/padscope/padscope/lib/pad"
)

// DefaultDevice is the first joystick node registered by the kernel.
const DefaultDevice = "/dev/input/js0"

// Joystick event record layout: time (u32), value (i16), type (u8),
// number (u8), little-endian, 8 bytes.
const eventSize = 8

// Event type bits from linux/joystick.h. The init bit is OR-ed onto
// button/axis events replayed when the device is first opened.
const (
	eventButton = 0x01
	eventAxis   = 0x02
	eventInit   = 0x80
)

// Button numbers as mapped by the kernel xpad driver.
const (
	buttonA = iota
	buttonB
	buttonX
	buttonY
	buttonLB
	buttonRB
	buttonBack
	buttonStart
	buttonGuide
	buttonLS
	buttonRS
)

// Axis numbers as mapped by the kernel xpad driver. The dpad arrives
// as two hat axes, not as buttons.
const (
	axisLX = iota
	axisLY
	axisLT
	axisRX
	axisRY
	axisRT
	axisDpadX
	axisDpadY
)

// Device reads one joystick node and accumulates its events into a
// raw report. It implements source.Source and is used from the
// acquisition goroutine only.
type Device struct {
	path   string
	logger *slog.Logger

	fd     int
	open   bool
	report pad.RawReport
}

// Open returns a Device for the given joystick node. The node does not
// need to exist yet: the device is opened lazily and reopened after
// unplug, so a controller plugged in later is picked up automatically.
func Open(path string, logger *slog.Logger) *Device {
	if path == "" {
		path = DefaultDevice
	}
	return &Device{path: path, logger: logger, fd: -1}
}

// Initialize attempts the first open. An absent device is not an
// error.
func (d *Device) Initialize() error {
	d.tryOpen()
	return nil
}

// Poll drains pending events and returns the accumulated report. A
// read failure other than "no more events" means the device went away:
// the node is closed, the report is cleared, and later polls try to
// reopen it.
func (d *Device) Poll() (pad.RawReport, bool, error) {
	if !d.open && !d.tryOpen() {
		return pad.RawReport{}, false, nil
	}

	var buf [eventSize]byte
	for {
		n, err := unix.Read(d.fd, buf[:])
		if err == unix.EAGAIN {
			break
		}
		if err != nil || n != eventSize {
			d.drop(err)
			return pad.RawReport{}, false, nil
		}
		d.apply(buf)
	}
	return d.report, true, nil
}

// Shutdown closes the device node if it is open.
func (d *Device) Shutdown() {
	if d.open {
		unix.Close(d.fd)
		d.fd = -1
		d.open = false
	}
}

func (d *Device) tryOpen() bool {
	fd, err := unix.Open(d.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return false
	}
	d.fd = fd
	d.open = true
	d.report = pad.RawReport{}
	d.logger.Info("joystick opened", "path", d.path)
	return true
}

func (d *Device) drop(err error) {
	d.logger.Info("joystick lost", "path", d.path, "error", err)
	unix.Close(d.fd)
	d.fd = -1
	d.open = false
	d.report = pad.RawReport{}
}

// apply folds one event record into the report. The init bit is
// stripped: replayed initial-state events carry real values.
func (d *Device) apply(buf [eventSize]byte) {
	value := int16(binary.LittleEndian.Uint16(buf[4:6]))
	kind := buf[6] &^ eventInit
	number := buf[7]

	switch kind {
	case eventButton:
		d.applyButton(number, value != 0)
	case eventAxis:
		d.applyAxis(number, value)
	}
}

func (d *Device) applyButton(number uint8, pressed bool) {
	var bit uint16
	switch number {
	case buttonA:
		bit = pad.ButtonA
	case buttonB:
		bit = pad.ButtonB
	case buttonX:
		bit = pad.ButtonX
	case buttonY:
		bit = pad.ButtonY
	case buttonLB:
		bit = pad.ButtonLB
	case buttonRB:
		bit = pad.ButtonRB
	case buttonBack:
		bit = pad.ButtonBack
	case buttonStart:
		bit = pad.ButtonStart
	case buttonLS:
		bit = pad.ButtonLS
	case buttonRS:
		bit = pad.ButtonRS
	default:
		return // guide button and anything beyond have no report bit
	}
	if pressed {
		d.report.Buttons |= bit
	} else {
		d.report.Buttons &^= bit
	}
}

func (d *Device) applyAxis(number uint8, value int16) {
	switch number {
	case axisLX:
		d.report.LX = value
	case axisLY:
		// The kernel reports down as positive; the report convention
		// is up positive, matching the stick's physical deflection.
		d.report.LY = negate(value)
	case axisRX:
		d.report.RX = value
	case axisRY:
		d.report.RY = negate(value)
	case axisLT:
		d.report.LT = triggerByte(value)
	case axisRT:
		d.report.RT = triggerByte(value)
	case axisDpadX:
		d.report.Buttons &^= pad.ButtonDpadLeft | pad.ButtonDpadRight
		if value < 0 {
			d.report.Buttons |= pad.ButtonDpadLeft
		} else if value > 0 {
			d.report.Buttons |= pad.ButtonDpadRight
		}
	case axisDpadY:
		d.report.Buttons &^= pad.ButtonDpadUp | pad.ButtonDpadDown
		if value < 0 {
			d.report.Buttons |= pad.ButtonDpadUp
		} else if value > 0 {
			d.report.Buttons |= pad.ButtonDpadDown
		}
	}
}

// negate flips a stick axis without overflowing on -32768.
func negate(v int16) int16 {
	if v == -32768 {
		return 32767
	}
	return -v
}

// triggerByte converts a trigger axis, which rests at -32767 and
// saturates at 32767, into the report's 0..255 range.
func triggerByte(v int16) uint8 {
	return uint8((int32(v) + 32768) * 255 / 65535)
}
