// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package assuan implements the server side of the Assuan-derived
// pinentry protocol as driven by gpg-agent. One [Session] lives for
// the lifetime of the process: it greets the peer, then reads one
// command per line from its input, updates the session's prompt,
// message, and error-annotation fields, and writes the response lines
// for that command before reading the next.
//
// The session is fully synchronous. GETPIN blocks on the injected
// [Prompter] (in production a graphical menu launcher, in tests a
// fake) until the human answers or cancels; no other command is read
// while a prompt is on screen.
//
// The protocol surface is deliberately permissive: unrecognized
// commands are acknowledged with OK so that peers negotiating
// capabilities this program does not implement keep working. The one
// reproduced asymmetry is GETINFO with an unknown sub-command, which
// produces no response lines at all — a strict peer could hang on
// that, but emitting OK would diverge from the behavior agents are
// tested against.
package assuan
