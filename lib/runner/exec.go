// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Resolved is the launcher selected for the lifetime of one session.
// It holds the probed executable path and the parsed template, so
// invocation never re-reads the catalog.
type Resolved struct {
	name  string
	path  string
	words []string
}

// Name returns the catalog name of the selected launcher. The protocol
// session reports it for "GETINFO flavor".
func (r *Resolved) Name() string {
	return r.name
}

// Prompt invokes the launcher with the given prompt and message text
// and waits for it to finish. The child's stdout is the candidate
// secret; its own window is the only human-facing surface, so the
// child gets no stdin. A non-zero exit means the user cancelled:
// accepted is false and there is no secret, but no error — cancellation
// is a valid outcome. An error is returned only when the process could
// not be run at all (executable removed since resolution, permission
// change); callers recover from that without aborting the session.
//
// The returned secret has one trailing line terminator removed. An
// empty secret with accepted=true means the launcher printed nothing.
func (r *Resolved) Prompt(ctx context.Context, prompt, message string) (secret string, accepted bool, err error) {
	argv := r.argv(prompt, message)

	command := exec.CommandContext(ctx, r.path, argv[1:]...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("running %s: %w (stderr: %s)",
			r.name, err, strings.TrimSpace(stderr.String()))
	}

	return trimLineEnd(stdout.String()), true, nil
}

// argv expands the template into the final argument vector. Placeholder
// words become whole elements holding the raw prompt/message text, so
// the vector's length always equals the template's word count no matter
// what the text contains.
func (r *Resolved) argv(prompt, message string) []string {
	argv := make([]string, len(r.words))
	for i, word := range r.words {
		switch word {
		case promptPlaceholder:
			argv[i] = prompt
		case messagePlaceholder:
			argv[i] = message
		default:
			argv[i] = word
		}
	}
	return argv
}

// trimLineEnd removes a single trailing line terminator ("\n" or
// "\r\n"). Only one: a secret that itself ends in a newline keeps the
// rest.
func trimLineEnd(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
