// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes build identification for --version output.
package version

import "fmt"

// Set at build time via -ldflags:
//
//	-X github.com/padscope/padscope/lib/version.Version=v0.3.0
//	-X github.com/padscope/padscope/lib/version.Commit=abcdef0
var (
	Version = "dev"
	Commit  = ""
)

// Info returns a single-line version string.
func Info() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
