// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"bytes"
	"testing"

	"github.com/padscope/padscope/lib/pad"
)

func TestEncodeDisconnectedSnapshot(t *testing.T) {
	t.Parallel()
	got := Encode(pad.State{})
	want := `{"connected":false,` +
		`"buttons":{"A":0,"B":0,"X":0,"Y":0,"LB":0,"RB":0,"Back":0,"Start":0,"LS":0,"RS":0,` +
		`"DpadUp":0,"DpadDown":0,"DpadLeft":0,"DpadRight":0},` +
		`"triggers":{"LT":0.000000,"RT":0.000000},` +
		`"sticks":{"LX":0.000000,"LY":0.000000,"RX":0.000000,"RY":0.000000}}` + "\n"
	if string(got) != want {
		t.Errorf("Encode(zero):\n got %s\nwant %s", got, want)
	}
}

func TestEncodeFixedPrecision(t *testing.T) {
	t.Parallel()
	state := pad.State{
		Connected: true,
		LT:        1.0,
		RT:        0.5,
		LX:        -1.0,
		LY:        pad.NormalizeStick(16384),
	}
	line := string(Encode(state))

	for _, fragment := range []string{
		`"connected":true`,
		`"LT":1.000000`,
		`"RT":0.500000`,
		`"LX":-1.000000`,
		`"LY":0.500015`,
	} {
		if !bytes.Contains([]byte(line), []byte(fragment)) {
			t.Errorf("Encode output missing %q:\n%s", fragment, line)
		}
	}
}

func TestEncodeEndsWithSingleNewline(t *testing.T) {
	t.Parallel()
	line := Encode(pad.State{Connected: true})
	if line[len(line)-1] != '\n' {
		t.Fatal("message not newline-terminated")
	}
	if bytes.Count(line, []byte{'\n'}) != 1 {
		t.Fatalf("message contains %d newlines, want 1", bytes.Count(line, []byte{'\n'}))
	}
}

func TestDisconnectedRoundTrip(t *testing.T) {
	t.Parallel()
	snapshot, err := Decode(Encode(pad.State{}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if snapshot.Connected {
		t.Error("connected: got true, want false")
	}
	if snapshot.Buttons != (SnapshotButtons{}) {
		t.Errorf("buttons not all zero: %+v", snapshot.Buttons)
	}
	if snapshot.Triggers != (SnapshotTrigger{}) {
		t.Errorf("triggers not zero: %+v", snapshot.Triggers)
	}
	if snapshot.Sticks != (SnapshotSticks{}) {
		t.Errorf("sticks not zero: %+v", snapshot.Sticks)
	}
}

func TestRoundTripPreservesState(t *testing.T) {
	t.Parallel()
	state := pad.State{
		Connected: true,
		Buttons:   pad.Buttons{A: true, Back: true, DpadRight: true},
		LT:        0.25,
		RT:        1.0,
		LX:        -0.5,
		RY:        1.0,
	}

	snapshot, err := Decode(Encode(state))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := snapshot.State(); got != state {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, state)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := Decode([]byte("not json\n")); err == nil {
		t.Error("Decode accepted malformed input")
	}
}
