// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoRunnerAvailable reports that no catalog entry's program is
// installed. Fatal: there is no way to show a prompt.
var ErrNoRunnerAvailable = errors.New("no supported menu launcher is installed")

// UnsupportedRunnerError reports a requested launcher name that is not
// in the catalog. This is a configuration error, not a fallback
// condition — a typo in the requested name must never silently select
// a different launcher.
type UnsupportedRunnerError struct {
	Name       string
	Suggestion string
}

func (e *UnsupportedRunnerError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unsupported launcher %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unsupported launcher %q", e.Name)
}

// Resolve selects the launcher for this session. A requested name must
// be a catalog entry; if its program is installed it wins. When the
// request is absent, or names a known launcher that is not installed
// (logged as a warning), the catalog is scanned in declaration order
// and the first installed entry is selected. The choice is made once
// per process — the returned Resolved is immutable.
func (c *Catalog) Resolve(requested string, logger *slog.Logger) (*Resolved, error) {
	if requested != "" {
		match := c.find(requested)
		if match == nil {
			return nil, &UnsupportedRunnerError{
				Name:       requested,
				Suggestion: c.suggest(requested),
			}
		}
		path, err := c.lookPath(match.words[0])
		if err == nil {
			return &Resolved{name: match.spec.Name, path: path, words: match.words}, nil
		}
		logger.Warn("requested launcher is not installed, falling back to catalog scan",
			"launcher", requested, "program", match.words[0])
	}

	for _, e := range c.entries {
		path, err := c.lookPath(e.words[0])
		if err != nil {
			continue
		}
		return &Resolved{name: e.spec.Name, path: path, words: e.words}, nil
	}

	return nil, ErrNoRunnerAvailable
}

// find returns the catalog entry with the given name, or nil.
func (c *Catalog) find(name string) *entry {
	for i := range c.entries {
		if c.entries[i].spec.Name == name {
			return &c.entries[i]
		}
	}
	return nil
}
