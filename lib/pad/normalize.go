// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package pad

// Normalize maps a raw report into a State. It is a pure function with
// no retained references into the report.
//
// Triggers map [0, 255] linearly onto [0, 1]. Sticks map asymmetrically:
// non-negative values divide by 32767 and negative values divide by
// 32768, so both raw extremes land on exactly +1.0 and -1.0 with no
// clipping.
//
// When connected is false the report content is ignored and the zero
// State (all buttons released, all axes at rest) is returned, so a
// disconnected snapshot is always well formed.
func Normalize(report RawReport, connected bool) State {
	if !connected {
		return State{}
	}
	return State{
		Connected: true,
		Buttons: Buttons{
			A:         report.Buttons&ButtonA != 0,
			B:         report.Buttons&ButtonB != 0,
			X:         report.Buttons&ButtonX != 0,
			Y:         report.Buttons&ButtonY != 0,
			LB:        report.Buttons&ButtonLB != 0,
			RB:        report.Buttons&ButtonRB != 0,
			Back:      report.Buttons&ButtonBack != 0,
			Start:     report.Buttons&ButtonStart != 0,
			LS:        report.Buttons&ButtonLS != 0,
			RS:        report.Buttons&ButtonRS != 0,
			DpadUp:    report.Buttons&ButtonDpadUp != 0,
			DpadDown:  report.Buttons&ButtonDpadDown != 0,
			DpadLeft:  report.Buttons&ButtonDpadLeft != 0,
			DpadRight: report.Buttons&ButtonDpadRight != 0,
		},
		LT: NormalizeTrigger(report.LT),
		RT: NormalizeTrigger(report.RT),
		LX: NormalizeStick(report.LX),
		LY: NormalizeStick(report.LY),
		RX: NormalizeStick(report.RX),
		RY: NormalizeStick(report.RY),
	}
}

// NormalizeTrigger maps a raw trigger byte onto [0, 1].
func NormalizeTrigger(v uint8) float64 {
	return float64(v) / TriggerMax
}

// NormalizeStick maps a raw stick value onto [-1, 1]. The divisor
// depends on sign because the signed 16-bit range is asymmetric.
func NormalizeStick(v int16) float64 {
	if v >= 0 {
		return float64(v) / StickMax
	}
	return float64(v) / StickMinMag
}
