// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/padscope/padscope/lib/clock"
)

// DefaultDialRetry is how long a connecting consumer waits between
// attempts while the feed endpoint does not exist yet (monitor not
// started, or busy serving another consumer).
const DefaultDialRetry = 300 * time.Millisecond

// Client is the consumer side of the feed: it dials the unix socket
// and reads one snapshot per line.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to the feed socket, retrying every DefaultDialRetry
// until the endpoint accepts or ctx is cancelled. Retrying is the
// normal connect path: the endpoint only exists while the server is
// between consumers.
func Dial(ctx context.Context, socketPath string, clk clock.Clock) (*Client, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	dialer := net.Dialer{}
	for {
		conn, err := dialer.DialContext(ctx, "unix", socketPath)
		if err == nil {
			return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("dialing feed socket %s: %w", socketPath, ctx.Err())
		case <-clk.After(DefaultDialRetry):
		}
	}
}

// Read blocks for the next snapshot. Returns an error when the server
// closes the session (io.EOF via the underlying read) or the message
// does not parse.
func (c *Client) Read() (Snapshot, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading feed message: %w", err)
	}
	return Decode(line)
}

// ReadRaw blocks for the next raw wire line, including the trailing
// newline. Useful for consumers that forward the feed verbatim.
func (c *Client) ReadRaw() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("reading feed message: %w", err)
	}
	return line, nil
}

// Close terminates the session. The server re-listens for the next
// consumer.
func (c *Client) Close() error {
	return c.conn.Close()
}
