// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// pinentry-menu is a pinentry replacement that renders PIN prompts
// through a dmenu-class menu launcher (rofi, wofi, fuzzel, tofi, or a
// custom command template). It speaks the Assuan-derived pinentry
// protocol on stdin/stdout, so gpg-agent and compatible credential
// agents can use it as a drop-in front-end:
//
//	# ~/.gnupg/gpg-agent.conf
//	pinentry-program /usr/bin/pinentry-menu
//
// The launcher is chosen once at startup: the first positional
// argument names it, falling back to the PINENTRY_MENU_LAUNCHER
// environment variable, then the config file, then a scan for the
// first installed catalog entry. Naming a launcher the catalog does
// not know is a fatal configuration error; naming a known launcher
// that is not installed logs a warning and falls back to the scan.
//
// A graphical display (WAYLAND_DISPLAY or DISPLAY) is required before
// the protocol loop starts — without one the launcher could never
// appear, and failing fast beats a hung agent transaction.
package main
