// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Screen owns the terminal surface the dashboard is drawn on. It hides
// the cursor while active and redraws each frame from a fixed home
// coordinate with one Write call, rather than clearing line by line,
// to avoid visible flicker.
type Screen struct {
	writer io.Writer
	output *termenv.Output
	home   string
}

// NewScreen prepares a Screen over w (normally os.Stdout).
func NewScreen(w io.Writer) *Screen {
	return &Screen{
		writer: w,
		output: termenv.NewOutput(w),
		home:   fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, 1, 1),
	}
}

// Start clears the terminal and hides the cursor. Call Stop before
// exiting to restore it.
func (s *Screen) Start() {
	s.output.HideCursor()
	s.output.ClearScreen()
}

// Draw writes one frame. The home sequence and the frame go out in a
// single Write so a reader never sees a partially drawn screen. A
// failed terminal write is non-fatal: the frame is simply dropped and
// the next tick draws a complete one.
func (s *Screen) Draw(frame string) {
	buf := make([]byte, 0, len(s.home)+len(frame))
	buf = append(buf, s.home...)
	buf = append(buf, frame...)
	_, _ = s.writer.Write(buf)
}

// Stop restores the cursor and moves output past the dashboard so
// shell output does not land inside the old frame.
func (s *Screen) Stop() {
	s.output.ShowCursor()
	_, _ = io.WriteString(s.writer, "\n")
}
