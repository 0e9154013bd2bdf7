// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/padscope/padscope/lib/clock"
	"github.com/padscope/padscope/lib/latest"
	"github.com/padscope/padscope/lib/pad"
	"github.com/padscope/padscope/lib/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startServer runs a Server over a temp socket and returns the socket
// path, the cell, and the server's done channel.
func startServer(t *testing.T, ctx context.Context) (string, *latest.Cell[pad.State], <-chan struct{}) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "feed.sock")
	cell := latest.NewCell[pad.State]()
	server := &Server{
		SocketPath: socketPath,
		Cell:       cell,
		Clock:      clock.Real(),
		Logger:     discardLogger(),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(ctx); err != nil {
			t.Errorf("Serve: %v", err)
		}
	}()
	return socketPath, cell, done
}

// publishEvery publishes state into cell at a steady cadence until the
// returned stop function is called. Streaming starts from the sequence
// number current at accept time, so tests keep publishing rather than
// racing a single publish against the accept.
func publishEvery(cell *latest.Cell[pad.State], state pad.State) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cell.Publish(state)
			}
		}
	}()
	return cancel
}

func TestServerStreamsSnapshots(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	socketPath, cell, _ := startServer(t, ctx)

	state := pad.State{Connected: true, Buttons: pad.Buttons{X: true}, RT: 1.0}
	stop := publishEvery(cell, state)
	defer stop()

	client, err := Dial(ctx, socketPath, clock.Real())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	snapshot, err := client.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := snapshot.State(); got != state {
		t.Errorf("snapshot:\n got %+v\nwant %+v", got, state)
	}
}

func TestServerReListensAfterDisconnect(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	socketPath, cell, _ := startServer(t, ctx)

	first := pad.State{Connected: true, LT: 0.5}
	stop := publishEvery(cell, first)

	client, err := Dial(ctx, socketPath, clock.Real())
	if err != nil {
		t.Fatalf("first Dial: %v", err)
	}
	if _, err := client.Read(); err != nil {
		t.Fatalf("first Read: %v", err)
	}
	client.Close()
	stop()

	// The next consumer must get fresh data, not anything queued for
	// the first session.
	second := pad.State{Connected: true, LT: 1.0}
	stop = publishEvery(cell, second)
	defer stop()

	client, err = Dial(ctx, socketPath, clock.Real())
	if err != nil {
		t.Fatalf("second Dial: %v", err)
	}
	defer client.Close()

	snapshot, err := client.Read()
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if got := snapshot.State(); got != second {
		t.Errorf("after reconnect:\n got %+v\nwant %+v", got, second)
	}
}

func TestServerShutdownWhileConsumerWaits(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	socketPath, _, done := startServer(t, ctx)

	client, err := Dial(ctx, socketPath, clock.Real())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	// No publishes: the server is blocked in the cell wait. Shutdown
	// must unblock it and end the session.
	cancel()
	testutil.Closed(t, done, 5*time.Second, "Serve return after cancel")

	if _, err := client.Read(); err == nil {
		t.Error("Read succeeded after server shutdown, want session end")
	}
}

func TestServerShutdownWhileListening(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	socketPath, _, done := startServer(t, ctx)

	// Wait for the endpoint to exist so the server is provably inside
	// Accept, then shut down with no consumer ever connecting.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(socketPath); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("feed socket never appeared")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	testutil.Closed(t, done, 5*time.Second, "Serve return while listening")

	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Errorf("socket file still present after shutdown: %v", err)
	}
}

func TestServerRetriesBindFailure(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing parent directory makes the bind fail until the
	// directory is created.
	parent := filepath.Join(t.TempDir(), "missing")
	socketPath := filepath.Join(parent, "feed.sock")

	fakeClock := clock.Fake(time.Unix(0, 0))
	cell := latest.NewCell[pad.State]()
	server := &Server{
		SocketPath: socketPath,
		Cell:       cell,
		Clock:      fakeClock,
		Logger:     discardLogger(),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.Serve(ctx)
	}()

	// The server is in its backoff wait. Create the directory, then
	// release the backoff; the next bind attempt must succeed.
	fakeClock.AwaitWaiters(1)
	if err := os.Mkdir(parent, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	fakeClock.Advance(DefaultBindBackoff)

	stop := publishEvery(cell, pad.State{Connected: true})
	defer stop()

	client, err := Dial(ctx, socketPath, clock.Real())
	if err != nil {
		t.Fatalf("Dial after bind retry: %v", err)
	}
	defer client.Close()
	if _, err := client.Read(); err != nil {
		t.Fatalf("Read after bind retry: %v", err)
	}

	cancel()
	testutil.Closed(t, done, 5*time.Second, "Serve return")
}
