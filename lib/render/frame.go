// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/padscope/padscope/lib/pad"
)

// FrameLines is the fixed height of a dashboard frame, excluding the
// final newline. Every frame has exactly this many lines so successive
// frames overwrite each other completely.
const FrameLines = 12

// Frame renders one dashboard frame. The layout is stable across
// frames: every numeric field is fixed-width, so changing values never
// leave stale characters behind when the frame is redrawn in place.
func Frame(state pad.State, rateHz int, socketPath string) string {
	var out strings.Builder
	out.Grow(512)

	fmt.Fprintf(&out, "Controller Monitor @ %d Hz\n", rateHz)
	fmt.Fprintf(&out, "Feed socket: %s    (Ctrl+C to exit)\n", socketPath)
	out.WriteString("\n")

	connected := "No "
	if state.Connected {
		connected = "Yes"
	}
	fmt.Fprintf(&out, "Connected: %s\n", connected)
	out.WriteString("\n")

	b := state.Buttons
	fmt.Fprintf(&out, "Buttons:   A:%d  B:%d  X:%d  Y:%d\n",
		bit(b.A), bit(b.B), bit(b.X), bit(b.Y))
	fmt.Fprintf(&out, "           LB:%d  RB:%d  Back:%d  Start:%d\n",
		bit(b.LB), bit(b.RB), bit(b.Back), bit(b.Start))
	fmt.Fprintf(&out, "           LS:%d  RS:%d\n", bit(b.LS), bit(b.RS))
	fmt.Fprintf(&out, "DPad:      Up:%d  Down:%d  Left:%d  Right:%d\n",
		bit(b.DpadUp), bit(b.DpadDown), bit(b.DpadLeft), bit(b.DpadRight))
	out.WriteString("\n")

	fmt.Fprintf(&out, "Triggers:  LT:%5.3f   RT:%5.3f\n", state.LT, state.RT)
	fmt.Fprintf(&out, "Sticks:    LX:%7.3f  LY:%7.3f   RX:%7.3f  RY:%7.3f\n",
		state.LX, state.LY, state.RX, state.RY)

	return out.String()
}

func bit(pressed bool) int {
	if pressed {
		return 1
	}
	return 0
}
