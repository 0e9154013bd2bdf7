// Copyright 2026 The Padscope Authors
// SPDX-License-Identifier: Apache-2.0

// Padscope samples a game controller at a fixed rate, shows the
// normalized state on a terminal dashboard, and republishes each
// snapshot over a local unix socket so one external consumer at a time
// can follow the live feed (see cmd/padscope-read).
//
// Configuration comes from an optional YAML file (PADSCOPE_CONFIG or
// --config) with individual flag overrides. The feed socket and the
// dashboard run at the same tick rate; the feed always carries the
// freshest snapshot only.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/padscope/padscope/lib/acquire"
	"github.com/padscope/padscope/lib/clock"
	"github.com/padscope/padscope/lib/config"
	"github.com/padscope/padscope/lib/feed"
	"github.com/padscope/padscope/lib/latest"
	"github.com/padscope/padscope/lib/lifecycle"
	"github.com/padscope/padscope/lib/pad"
	"github.com/padscope/padscope/lib/render"
	"github.com/padscope/padscope/lib/source/joystick"
	"github.com/padscope/padscope/lib/version"
)

// errForced marks the one non-cooperative exit path: components still
// running when the grace period ends.
var errForced = errors.New("shutdown grace period elapsed")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errForced) {
			fmt.Fprintf(os.Stderr, "padscope: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		rateHz      int
		device      string
		socketPath  string
		noConsole   bool
		showVersion bool
	)
	pflag.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	pflag.IntVar(&rateHz, "rate", 0, "acquisition rate in Hz (overrides config)")
	pflag.StringVar(&device, "device", "", "joystick device node (overrides config)")
	pflag.StringVar(&socketPath, "socket", "", "feed unix socket path (overrides config)")
	pflag.BoolVar(&noConsole, "no-console", false, "disable the terminal dashboard")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("padscope %s\n", version.Info())
		return nil
	}

	if configPath == "" {
		configPath = os.Getenv(config.EnvVar)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if pflag.CommandLine.Changed("rate") {
		cfg.RateHz = rateHz
	}
	if pflag.CommandLine.Changed("device") {
		cfg.Device = device
	}
	if pflag.CommandLine.Changed("socket") {
		cfg.SocketPath = socketPath
	}
	if noConsole {
		cfg.Console = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	grace, err := cfg.Grace()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The acquisition loop ending for any reason ends the process, so
	// a failed source initialization does not leave a feed serving
	// nothing forever.
	ctx, cancel := context.WithCancel(signalCtx)
	defer cancel()

	clk := clock.Real()
	cell := latest.NewCell[pad.State]()

	loop := &acquire.Loop{
		Source: joystick.Open(cfg.Device, logger),
		Cell:   cell,
		Clock:  clk,
		RateHz: cfg.RateHz,
		Logger: logger,
	}

	var screen *render.Screen
	if cfg.Console && term.IsTerminal(int(os.Stdout.Fd())) {
		screen = render.NewScreen(os.Stdout)
		screen.Start()
		rate, socket := cfg.RateHz, cfg.SocketPath
		loop.Render = func(s pad.State) {
			screen.Draw(render.Frame(s, rate, socket))
		}
	}

	server := &feed.Server{
		SocketPath: cfg.SocketPath,
		Cell:       cell,
		Clock:      clk,
		Logger:     logger,
	}

	logger.Info("padscope starting",
		"rate_hz", cfg.RateHz,
		"device", cfg.Device,
		"socket", cfg.SocketPath,
		"console", screen != nil,
	)

	group := lifecycle.NewGroup(clk, grace, logger)
	group.Go("acquire", func() error {
		defer cancel()
		return loop.Run(ctx)
	})
	group.Go("feed", func() error {
		return server.Serve(ctx)
	})

	<-ctx.Done()
	logger.Info("shutdown requested")

	// Wake every consumer blocked on the cell, then join with the
	// bounded grace period.
	cell.Close()
	graceful := group.WaitGraceful()

	if screen != nil {
		screen.Stop()
	}
	if !graceful {
		return errForced
	}
	logger.Info("padscope stopped")
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
