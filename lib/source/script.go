// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package source

import "github.com/padscope/padscope/lib/pad"

// PollResult is one scripted answer from a Script source.
type PollResult struct {
	Report    pad.RawReport
	Connected bool
	Err       error
}

// Script is a deterministic Source for tests. Each Poll returns the
// next scripted result; once the script is exhausted the final result
// repeats forever. The zero Script reports disconnected on every poll.
type Script struct {
	Steps []PollResult

	// InitErr, when set, is returned from Initialize.
	InitErr error

	index      int
	polls      int
	shutdowns  int
	initCalled bool
}

func (s *Script) Initialize() error {
	s.initCalled = true
	return s.InitErr
}

func (s *Script) Poll() (pad.RawReport, bool, error) {
	s.polls++
	if len(s.Steps) == 0 {
		return pad.RawReport{}, false, nil
	}
	step := s.Steps[s.index]
	if s.index < len(s.Steps)-1 {
		s.index++
	}
	return step.Report, step.Connected, step.Err
}

func (s *Script) Shutdown() { s.shutdowns++ }

// Polls reports how many times Poll has been called.
func (s *Script) Polls() int { return s.polls }

// Shutdowns reports how many times Shutdown has been called.
func (s *Script) Shutdowns() int { return s.shutdowns }

// Initialized reports whether Initialize was called.
func (s *Script) Initialized() bool { return s.initCalled }
