// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package assuan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// protocolVersion is reported for "GETINFO version". This is the
// protocol surface version, independent of the build version.
const protocolVersion = "0.1"

// Prompter shows a prompt to the human and returns the captured
// secret. accepted is false when the human cancelled; err is reserved
// for failures to show the prompt at all. Implemented by
// runner.Resolved in production and by fakes in tests.
type Prompter interface {
	// Name identifies the prompter for "GETINFO flavor".
	Name() string

	// Prompt blocks until the human answers or cancels.
	Prompt(ctx context.Context, prompt, message string) (secret string, accepted bool, err error)
}

// Session is one pinentry protocol exchange, from greeting to BYE or
// peer disconnect. Fields accumulate as SET* commands arrive and feed
// each GETPIN; nothing persists beyond the session.
type Session struct {
	in       *bufio.Scanner
	out      *bufio.Writer
	prompter Prompter
	logger   *slog.Logger

	prompt          string
	message         string
	errorAnnotation string
}

// NewSession wires a session to its protocol streams. In production in
// and out are the process's stdin/stdout with gpg-agent on the far
// end.
func NewSession(prompter Prompter, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      bufio.NewWriter(out),
		prompter: prompter,
		logger:   logger,
	}
}

// Run drives the session to completion: greet, then read one command
// per line and respond until BYE or end of input. Each command is
// fully handled and its response flushed before the next read — the
// loop never reads ahead while a prompt is on screen. Returns nil on
// BYE and on clean peer disconnect.
func (s *Session) Run(ctx context.Context) error {
	// Assuan servers greet first; the peer blocks until this line.
	if err := s.respond("OK Pleased to meet you"); err != nil {
		return err
	}

	for s.in.Scan() {
		line := s.in.Text()
		closing, err := s.handle(ctx, line)
		if err != nil {
			return err
		}
		if closing {
			return nil
		}
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("reading protocol input: %w", err)
	}
	return nil
}

// handle dispatches one command line. The command word is everything
// up to the first space, matched exactly; the remainder is handed to
// the handler unparsed.
func (s *Session) handle(ctx context.Context, line string) (closing bool, err error) {
	if strings.HasPrefix(line, "#") {
		return false, s.respond("OK")
	}

	command, args := line, ""
	if index := strings.IndexByte(line, ' '); index >= 0 {
		command, args = line[:index], line[index+1:]
	}

	switch command {
	case "GETINFO":
		return false, s.handleGetInfo(args)

	case "SETDESC":
		s.prompt, s.message = DecodeDescription(args)
		return false, s.respond("OK")

	case "SETERROR":
		s.errorAnnotation = "** " + strings.ToUpper(args) + " **"
		return false, s.respond("OK")

	case "SETPROMPT":
		s.prompt = strings.ReplaceAll(args, ":", "")
		return false, s.respond("OK")

	case "GETPIN":
		return false, s.handleGetPin(ctx)

	case "BYE":
		return true, s.respond("OK closing connection")

	default:
		// Capability-negotiation commands (OPTION, SETKEYINFO, ...)
		// are acknowledged without effect.
		return false, s.respond("OK")
	}
}

// handleGetInfo answers the GETINFO sub-commands gpg-agent sends. An
// unknown sub-command produces no response lines at all; known agents
// never send one, and the silent behavior is what existing peers are
// tested against.
func (s *Session) handleGetInfo(args string) error {
	switch args {
	case "flavor":
		return s.respond("D "+s.prompter.Name(), "OK")
	case "version":
		return s.respond("D "+protocolVersion, "OK")
	case "ttyinfo":
		return s.respond("D - - -", "OK")
	case "pid":
		return s.respond(fmt.Sprintf("D %d", os.Getpid()), "OK")
	default:
		s.logger.Warn("unknown GETINFO sub-command left unanswered", "subcommand", args)
		return nil
	}
}

// handleGetPin runs the launcher and reports the captured secret. The
// transaction always ends in OK: cancellation and launcher failure are
// no-secret outcomes, not protocol errors. A stored error annotation
// prefixes the message for this prompt only.
func (s *Session) handleGetPin(ctx context.Context) error {
	message := s.message
	if s.errorAnnotation != "" {
		if message != "" {
			message = s.errorAnnotation + " " + message
		} else {
			message = s.errorAnnotation
		}
		s.errorAnnotation = ""
	}

	secret, accepted, err := s.prompter.Prompt(ctx, s.prompt, message)
	if err != nil {
		s.logger.Error("launcher invocation failed", "error", err)
		return s.respond("OK")
	}
	if !accepted {
		s.logger.Debug("prompt cancelled by user")
		return s.respond("OK")
	}

	if secret == "" {
		return s.respond("OK")
	}
	return s.respond("D "+secret, "OK")
}

// respond writes the given response lines and flushes them before the
// next command is read.
func (s *Session) respond(lines ...string) error {
	for _, line := range lines {
		if _, err := s.out.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing protocol response: %w", err)
		}
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flushing protocol response: %w", err)
	}
	return nil
}
