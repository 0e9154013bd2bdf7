// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/padscope/padscope/lib/clock"
	"github.com/padscope/padscope/lib/latest"
	"github.com/padscope/padscope/lib/pad"
)

// DefaultSocketPath is the well-known feed endpoint.
const DefaultSocketPath = "/run/padscope/feed.sock"

// DefaultBindBackoff is how long the server waits before retrying a
// failed bind. Bind failure is transient resource contention, the only
// retried failure in the server.
const DefaultBindBackoff = 250 * time.Millisecond

// Server streams snapshots from a latest-value cell to one consumer at
// a time over a unix socket. Lifecycle per session: bind, accept one
// connection, stream every new cell value until the consumer
// disconnects, then bind again so the next consumer can attach. The
// server never fans out and never queues: a consumer receives whatever
// is freshest when it is ready to read.
type Server struct {
	// SocketPath is the unix socket to serve on. Empty means
	// DefaultSocketPath.
	SocketPath string

	// Cell is the snapshot source.
	Cell *latest.Cell[pad.State]

	// Clock paces the bind retry backoff.
	Clock clock.Clock

	// BindBackoff overrides DefaultBindBackoff when non-zero.
	BindBackoff time.Duration

	Logger *slog.Logger
}

// Serve runs the accept/stream/re-listen state machine until ctx is
// cancelled, then closes any active session, releases the socket, and
// returns nil. All session-level failures (bind contention, consumer
// disconnect, write errors) are handled here and never escalate.
func (s *Server) Serve(ctx context.Context) error {
	socketPath := s.SocketPath
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	backoff := s.BindBackoff
	if backoff == 0 {
		backoff = DefaultBindBackoff
	}
	defer os.Remove(socketPath)

	for ctx.Err() == nil {
		conn, err := s.acceptOne(ctx, socketPath)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			// Bind or accept contention. Back off and recreate the
			// endpoint; never surface this while we are supposed to
			// be running.
			s.Logger.Debug("feed endpoint unavailable, retrying", "error", err)
			select {
			case <-ctx.Done():
			case <-s.Clock.After(backoff):
			}
			continue
		}

		s.Logger.Info("feed consumer connected", "remote", conn.RemoteAddr())
		s.stream(ctx, conn)
		conn.Close()
	}
	return nil
}

// acceptOne binds the socket and blocks for a single consumer. The
// listener is closed before returning in every path: while one
// consumer is being served the endpoint does not exist, and a second
// connection attempt is refused at the transport level.
func (s *Server) acceptOne(ctx context.Context, socketPath string) (net.Conn, error) {
	// A previous instance may have left a stale socket file behind.
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", socketPath, err)
	}
	defer listener.Close()

	// Unblock Accept when shutdown begins; no consumer will ever
	// connect after that.
	unblock := context.AfterFunc(ctx, func() { listener.Close() })
	defer unblock()

	conn, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("accepting feed consumer: %w", err)
	}
	return conn, nil
}

// stream writes one wire message per cell publish until the consumer
// goes away or shutdown begins. A write failure is a normal session
// end, not an error.
func (s *Server) stream(ctx context.Context, conn net.Conn) {
	// Start from the current sequence number: the consumer gets fresh
	// snapshots only, never a stale queued value.
	_, seq := s.Cell.Latest()
	for {
		state, next, ok := s.Cell.Next(ctx, seq)
		if !ok {
			s.Logger.Info("feed session draining")
			return
		}
		seq = next
		if _, err := conn.Write(Encode(state)); err != nil {
			s.Logger.Info("feed consumer disconnected", "error", err)
			return
		}
	}
}
