// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Padscope-read is the reference feed consumer. It connects to a
// running padscope monitor's unix socket, retrying until the endpoint
// exists, and prints one JSON snapshot per line to stdout.
//
// The tool reconnects automatically when the monitor restarts or a
// previous consumer releases the single-consumer endpoint, so it can
// be left running as a pipeline stage:
//
//	padscope-read | jq .sticks
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/padscope/padscope/lib/clock"
	"github.com/padscope/padscope/lib/feed"
	"github.com/padscope/padscope/lib/version"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("padscope-read: "+err.Error()))
		os.Exit(1)
	}
}

func run() error {
	var (
		socketPath  string
		follow      bool
		showVersion bool
	)
	pflag.StringVar(&socketPath, "socket", feed.DefaultSocketPath, "feed unix socket path")
	pflag.BoolVar(&follow, "follow", true, "reconnect when the feed session ends")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("padscope-read %s\n", version.Info())
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status("waiting for feed at " + socketPath + " ...")
	for {
		client, err := feed.Dial(ctx, socketPath, clock.Real())
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		status("connected")

		if err := stream(ctx, client); err != nil && ctx.Err() == nil && !follow {
			return err
		}
		client.Close()
		if ctx.Err() != nil || !follow {
			return nil
		}
		status("feed session ended, reconnecting ...")
	}
}

// stream copies raw feed lines to stdout until the session ends. Lines
// are forwarded verbatim: the monitor already renders them in the
// stable wire format.
func stream(ctx context.Context, client *feed.Client) error {
	// Unblock the read when a signal arrives.
	done := context.AfterFunc(ctx, func() { client.Close() })
	defer done()

	for {
		line, err := client.ReadRaw()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.New("feed session ended")
		}
		if _, err := os.Stdout.Write(line); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	}
}

func status(message string) {
	fmt.Fprintln(os.Stderr, statusStyle.Render(message))
}
