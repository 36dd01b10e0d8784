// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional pinentry-menu configuration file.
//
// The file is located by the --config flag or the PINENTRY_MENU_CONFIG
// environment variable. There are no fallbacks, no ~/.config
// discovery, and no automatic file search — a pinentry program is
// launched by a credential agent, not a shell, so implicit
// configuration would be unauditable. An unset location means "no
// preferences"; a named file that cannot be read or parsed is an
// error.
//
// The file can name the preferred launcher, point the debug log at a
// file, and extend or override the built-in launcher catalog with
// custom command templates:
//
//	launcher: fuzzel
//	log_file: /tmp/pinentry-menu.log
//	runners:
//	  - name: mymenu
//	    template: "mymenu --ask {prompt} --detail {message}"
package config
