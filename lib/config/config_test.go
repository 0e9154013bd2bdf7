// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "padscope.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\"): got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "rate_hz: 60\nsocket_path: /tmp/pad.sock\nlog_level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RateHz != 60 {
		t.Errorf("RateHz: got %d, want 60", cfg.RateHz)
	}
	if cfg.SocketPath != "/tmp/pad.sock" {
		t.Errorf("SocketPath: got %q", cfg.SocketPath)
	}
	// Untouched fields keep their defaults.
	if cfg.Device != Default().Device {
		t.Errorf("Device: got %q, want default", cfg.Device)
	}
}

func TestLoadRejectsBadRate(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "rate_hz: 0\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted rate_hz 0")
	}
}

func TestLoadRejectsBadGrace(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "grace_period: never\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted unparseable grace_period")
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "log_level: loud\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted unknown log_level")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestGraceParses(t *testing.T) {
	t.Parallel()
	cfg := Default()
	d, err := cfg.Grace()
	if err != nil {
		t.Fatalf("Grace: %v", err)
	}
	if d != time.Second {
		t.Errorf("default grace: got %v, want 1s", d)
	}
}
