// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package pad

// Button bitmask values for RawReport.Buttons. The layout follows the
// standard Xbox-class report: one bit per button in a 16-bit field.
const (
	ButtonDpadUp    uint16 = 0x0001
	ButtonDpadDown  uint16 = 0x0002
	ButtonDpadLeft  uint16 = 0x0004
	ButtonDpadRight uint16 = 0x0008
	ButtonStart     uint16 = 0x0010
	ButtonBack      uint16 = 0x0020
	ButtonLS        uint16 = 0x0040
	ButtonRS        uint16 = 0x0080
	ButtonLB        uint16 = 0x0100
	ButtonRB        uint16 = 0x0200
	ButtonA         uint16 = 0x1000
	ButtonB         uint16 = 0x2000
	ButtonX         uint16 = 0x4000
	ButtonY         uint16 = 0x8000
)

// Raw axis extremes. Triggers report an unsigned byte; sticks report a
// signed 16-bit value whose positive and negative extremes differ by one.
const (
	TriggerMax  = 255
	StickMax    = 32767
	StickMinMag = 32768
)

// RawReport is a single controller report as produced by an input
// backend, before normalization. Field ranges match the wire layout of
// Xbox-class controllers: buttons as a bitmask, triggers in [0, 255],
// sticks in [-32768, 32767].
type RawReport struct {
	Buttons uint16
	LT, RT  uint8
	LX, LY  int16
	RX, RY  int16
}

// Buttons holds the pressed/released state of every named button.
type Buttons struct {
	A, B, X, Y     bool
	LB, RB         bool
	Back, Start    bool
	LS, RS         bool
	DpadUp         bool
	DpadDown       bool
	DpadLeft       bool
	DpadRight      bool
}

// State is the canonical controller snapshot at one instant. It is a
// value type: produced once per acquisition tick, never mutated
// afterward, and always handed to consumers by copy.
//
// Invariants: LT and RT lie in [0, 1]; LX, LY, RX, RY lie in [-1, 1];
// when Connected is false every button is false and every axis is zero.
type State struct {
	Connected bool
	Buttons   Buttons
	LT, RT    float64
	LX, LY    float64
	RX, RY    float64
}
