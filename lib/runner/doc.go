// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package runner selects and invokes the graphical menu launcher that
// renders a PIN prompt. A launcher is an external dmenu-class program
// (rofi, wofi, fuzzel, ...) that displays a prompt, reads one hidden
// line from the user, prints it to stdout, and exits non-zero on
// cancellation.
//
// The central types are [Catalog], the set of known launchers with
// their command templates, and [Resolved], the single launcher chosen
// for a session's lifetime. Resolution happens once, before any
// protocol traffic: an explicitly requested launcher must be a catalog
// entry (an unknown name is a configuration error, not a fallback
// condition), and when the request is absent or its executable is not
// installed, the catalog is scanned in declaration order for the first
// installed entry.
//
// Command templates contain the placeholder words {prompt} and
// {message}. Placeholders are substituted as whole argv elements, so
// argument boundaries come from the template's structure alone —
// spaces or shell metacharacters inside prompt or message text can
// never split into extra arguments or reach a shell.
package runner
