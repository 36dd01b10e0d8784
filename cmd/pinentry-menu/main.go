// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/pinentry-menu/lib/assuan"
	"github.com/bureau-foundation/pinentry-menu/lib/config"
	"github.com/bureau-foundation/pinentry-menu/lib/runner"
	"github.com/bureau-foundation/pinentry-menu/lib/version"
)

// launcherEnvVar supplies the preferred launcher when the process is
// invoked without a positional argument. gpg-agent passes no arguments
// to its pinentry-program, so this is the integration convention for
// agent-launched instances.
const launcherEnvVar = "PINENTRY_MENU_LAUNCHER"

// displayVars are probed in order; one must be set before the protocol
// loop starts.
var displayVars = []string{"WAYLAND_DISPLAY", "DISPLAY"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var logPath string
	var showVersion bool

	flagSet := pflag.NewFlagSet("pinentry-menu", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&logPath, "log-file", "", "write JSON debug log records to this file")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pinentry-menu [flags] [launcher]\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if showVersion {
		version.Print("pinentry-menu")
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logPath == "" {
		logPath = cfg.LogFile
	}
	logger, closeLog, err := newLogger(logPath)
	if err != nil {
		return err
	}
	// The log file handle must be released on every exit path,
	// including the fatal precondition returns below.
	defer closeLog()

	if err := checkDisplay(); err != nil {
		return err
	}

	catalog, err := runner.NewCatalog(cfg.Runners)
	if err != nil {
		return err
	}
	resolved, err := catalog.Resolve(requestedLauncher(flagSet.Arg(0), cfg), logger)
	if err != nil {
		return err
	}
	logger.Info("launcher resolved", "launcher", resolved.Name())

	session := assuan.NewSession(resolved, os.Stdin, os.Stdout, logger)
	return session.Run(context.Background())
}

// requestedLauncher returns the preferred launcher name: the positional
// argument wins, then the environment variable, then the config file.
// Empty means no preference — the resolver scans the catalog.
func requestedLauncher(positional string, cfg *config.Config) string {
	if positional != "" {
		return positional
	}
	if fromEnv := os.Getenv(launcherEnvVar); fromEnv != "" {
		return fromEnv
	}
	return cfg.Launcher
}

// checkDisplay verifies a graphical session is present. Without a
// display no launcher can appear, and the agent would block forever on
// a prompt nobody can see — failing before the protocol loop lets it
// report the problem instead.
func checkDisplay() error {
	for _, name := range displayVars {
		if os.Getenv(name) != "" {
			return nil
		}
	}
	return fmt.Errorf("no graphical display: neither WAYLAND_DISPLAY nor DISPLAY is set")
}

// newLogger builds the process logger and returns a release function
// for its file handle. With a log path, all levels go to the file as
// JSON records. Without one, warnings and errors go to stderr:
// human-readable when stderr is a terminal, JSON when the agent or a
// test harness captures it.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		options := &slog.HandlerOptions{Level: slog.LevelWarn}
		var handler slog.Handler
		if term.IsTerminal(int(os.Stderr.Fd())) {
			handler = slog.NewTextHandler(os.Stderr, options)
		} else {
			handler = slog.NewJSONHandler(os.Stderr, options)
		}
		return slog.New(handler), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}
