// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/padscope/padscope/lib/pad"
)

// Encode renders a snapshot as one wire message: a JSON object with
// keys in fixed order, buttons as 0|1, floats with exactly six decimal
// places, terminated by a newline.
//
// The message is built by hand rather than with encoding/json because
// the format pins both key order and decimal rendering for
// reproducibility, and encoding/json guarantees neither.
func Encode(s pad.State) []byte {
	buf := make([]byte, 0, 512)
	buf = append(buf, `{"connected":`...)
	buf = strconv.AppendBool(buf, s.Connected)

	buf = append(buf, `,"buttons":{`...)
	b := s.Buttons
	buf = appendButton(buf, "A", b.A, false)
	buf = appendButton(buf, "B", b.B, true)
	buf = appendButton(buf, "X", b.X, true)
	buf = appendButton(buf, "Y", b.Y, true)
	buf = appendButton(buf, "LB", b.LB, true)
	buf = appendButton(buf, "RB", b.RB, true)
	buf = appendButton(buf, "Back", b.Back, true)
	buf = appendButton(buf, "Start", b.Start, true)
	buf = appendButton(buf, "LS", b.LS, true)
	buf = appendButton(buf, "RS", b.RS, true)
	buf = appendButton(buf, "DpadUp", b.DpadUp, true)
	buf = appendButton(buf, "DpadDown", b.DpadDown, true)
	buf = appendButton(buf, "DpadLeft", b.DpadLeft, true)
	buf = appendButton(buf, "DpadRight", b.DpadRight, true)

	buf = append(buf, `},"triggers":{"LT":`...)
	buf = appendFixed(buf, s.LT)
	buf = append(buf, `,"RT":`...)
	buf = appendFixed(buf, s.RT)

	buf = append(buf, `},"sticks":{"LX":`...)
	buf = appendFixed(buf, s.LX)
	buf = append(buf, `,"LY":`...)
	buf = appendFixed(buf, s.LY)
	buf = append(buf, `,"RX":`...)
	buf = appendFixed(buf, s.RX)
	buf = append(buf, `,"RY":`...)
	buf = appendFixed(buf, s.RY)

	buf = append(buf, "}}\n"...)
	return buf
}

func appendButton(buf []byte, name string, pressed bool, comma bool) []byte {
	if comma {
		buf = append(buf, ',')
	}
	buf = append(buf, '"')
	buf = append(buf, name...)
	buf = append(buf, `":`...)
	if pressed {
		return append(buf, '1')
	}
	return append(buf, '0')
}

func appendFixed(buf []byte, v float64) []byte {
	return strconv.AppendFloat(buf, v, 'f', 6, 64)
}

// Snapshot is the decoded form of one wire message. The field layout
// mirrors the wire schema exactly; buttons stay 0|1 integers so a
// decoded message can be compared against consumer expectations
// without interpretation.
type Snapshot struct {
	Connected bool            `json:"connected"`
	Buttons   SnapshotButtons `json:"buttons"`
	Triggers  SnapshotTrigger `json:"triggers"`
	Sticks    SnapshotSticks  `json:"sticks"`
}

type SnapshotButtons struct {
	A         int `json:"A"`
	B         int `json:"B"`
	X         int `json:"X"`
	Y         int `json:"Y"`
	LB        int `json:"LB"`
	RB        int `json:"RB"`
	Back      int `json:"Back"`
	Start     int `json:"Start"`
	LS        int `json:"LS"`
	RS        int `json:"RS"`
	DpadUp    int `json:"DpadUp"`
	DpadDown  int `json:"DpadDown"`
	DpadLeft  int `json:"DpadLeft"`
	DpadRight int `json:"DpadRight"`
}

type SnapshotTrigger struct {
	LT float64 `json:"LT"`
	RT float64 `json:"RT"`
}

type SnapshotSticks struct {
	LX float64 `json:"LX"`
	LY float64 `json:"LY"`
	RX float64 `json:"RX"`
	RY float64 `json:"RY"`
}

// Decode parses one wire message (with or without its trailing
// newline).
func Decode(line []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(line, &s); err != nil {
		return Snapshot{}, fmt.Errorf("parsing feed message: %w", err)
	}
	return s, nil
}

// State converts a decoded snapshot back into the canonical State.
// Axis precision is whatever the six-decimal wire rendering preserved.
func (s Snapshot) State() pad.State {
	return pad.State{
		Connected: s.Connected,
		Buttons: pad.Buttons{
			A:         s.Buttons.A != 0,
			B:         s.Buttons.B != 0,
			X:         s.Buttons.X != 0,
			Y:         s.Buttons.Y != 0,
			LB:        s.Buttons.LB != 0,
			RB:        s.Buttons.RB != 0,
			Back:      s.Buttons.Back != 0,
			Start:     s.Buttons.Start != 0,
			LS:        s.Buttons.LS != 0,
			RS:        s.Buttons.RS != 0,
			DpadUp:    s.Buttons.DpadUp != 0,
			DpadDown:  s.Buttons.DpadDown != 0,
			DpadLeft:  s.Buttons.DpadLeft != 0,
			DpadRight: s.Buttons.DpadRight != 0,
		},
		LT: s.Triggers.LT,
		RT: s.Triggers.RT,
		LX: s.Sticks.LX,
		LY: s.Sticks.LY,
		RX: s.Sticks.RX,
		RY: s.Sticks.RY,
	}
}
