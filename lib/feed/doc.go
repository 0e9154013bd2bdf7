// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Package feed publishes controller snapshots to one external consumer
// at a time over a local unix socket.
//
// The package is organized around the feed data flow:
//
//   - wire.go: the newline-delimited JSON snapshot message
//   - server.go: accept/stream/re-listen state machine over the socket
//   - client.go: consumer side with dial retry and line-buffered reads
//
// The wire format is deliberately stable and self-describing: one UTF-8
// JSON object per published tick, keys in fixed order, floats rendered
// with six decimal places, terminated by a newline. Consumers in any
// language can split on newlines and parse each line independently.
package feed
