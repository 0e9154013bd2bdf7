// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the padscope configuration file.
//
// Configuration comes from a single YAML file specified by the
// PADSCOPE_CONFIG environment variable or the --config flag; when
// neither is set, built-in defaults apply. There is no automatic
// discovery. Command-line flags override individual file values.
package config
