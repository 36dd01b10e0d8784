// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// Placeholder words recognized in command templates. Each must appear
// exactly once, as its own word, with {prompt} before {message}.
const (
	promptPlaceholder  = "{prompt}"
	messagePlaceholder = "{message}"
)

// Spec describes one launcher: its catalog name and the command
// template used to invoke it. Template words are separated by single
// spaces; the first word is the program to execute and the two
// placeholder words are replaced at invocation time.
type Spec struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// builtins is the default launcher catalog. Order matters: when no
// usable launcher was requested, Resolve scans this list first to last
// and picks the first entry whose program is installed.
//
// wofi has no message area, so the message goes into its pre-filled
// search field — the closest surface it offers.
var builtins = []Spec{
	{Name: "rofi", Template: "rofi -dmenu -password -i -p {prompt} -mesg {message}"},
	{Name: "wofi", Template: "wofi --dmenu --password --prompt {prompt} --search {message}"},
	{Name: "fuzzel", Template: "fuzzel --dmenu --password --prompt {prompt} --placeholder {message}"},
	{Name: "tofi", Template: "tofi --hide-input=true --prompt-text {prompt} --placeholder-text {message}"},
}

// entry is a catalog Spec with its template parsed into words.
type entry struct {
	spec  Spec
	words []string
}

// Catalog is the set of launchers resolution chooses from. The zero
// value is not usable; construct with [NewCatalog].
type Catalog struct {
	entries []entry

	// lookPath probes for an installed executable and returns its
	// absolute path. Tests swap it out; production uses exec.LookPath.
	lookPath func(program string) (string, error)
}

// NewCatalog returns the built-in catalog extended by overlay entries,
// typically from the config file. An overlay entry whose name matches
// a built-in replaces it in place (keeping its scan position); new
// names append after the built-ins. Every template, built-in or
// overlay, is validated here so that resolution and invocation never
// see a malformed one.
func NewCatalog(overlay []Spec) (*Catalog, error) {
	catalog := &Catalog{lookPath: exec.LookPath}

	for _, spec := range builtins {
		words, err := parseTemplate(spec.Template)
		if err != nil {
			// Built-in templates are fixed at compile time; a parse
			// failure here is a programming error.
			panic(fmt.Sprintf("built-in launcher %q: %v", spec.Name, err))
		}
		catalog.entries = append(catalog.entries, entry{spec: spec, words: words})
	}

	for _, spec := range overlay {
		if spec.Name == "" {
			return nil, fmt.Errorf("launcher entry with empty name")
		}
		words, err := parseTemplate(spec.Template)
		if err != nil {
			return nil, fmt.Errorf("launcher %q: %w", spec.Name, err)
		}
		replaced := false
		for i := range catalog.entries {
			if catalog.entries[i].spec.Name == spec.Name {
				catalog.entries[i] = entry{spec: spec, words: words}
				replaced = true
				break
			}
		}
		if !replaced {
			catalog.entries = append(catalog.entries, entry{spec: spec, words: words})
		}
	}

	return catalog, nil
}

// Names returns the catalog's launcher names in scan order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.spec.Name
	}
	return names
}

// parseTemplate splits a command template into words and checks its
// shape: a program word first, exactly one {prompt} and one {message}
// placeholder, prompt before message. Placeholders must be whole words
// — a placeholder embedded inside a word would merge user text with
// literal flag text into one argument, which no launcher expects.
func parseTemplate(template string) ([]string, error) {
	words := strings.Fields(template)
	if len(words) == 0 {
		return nil, fmt.Errorf("empty command template")
	}

	promptIndex, messageIndex := -1, -1
	for i, word := range words {
		switch word {
		case promptPlaceholder:
			if promptIndex != -1 {
				return nil, fmt.Errorf("template has multiple %s placeholders", promptPlaceholder)
			}
			promptIndex = i
		case messagePlaceholder:
			if messageIndex != -1 {
				return nil, fmt.Errorf("template has multiple %s placeholders", messagePlaceholder)
			}
			messageIndex = i
		default:
			if strings.Contains(word, promptPlaceholder) || strings.Contains(word, messagePlaceholder) {
				return nil, fmt.Errorf("placeholder embedded in word %q; placeholders must be whole words", word)
			}
		}
	}

	if promptIndex == -1 {
		return nil, fmt.Errorf("template is missing the %s placeholder", promptPlaceholder)
	}
	if messageIndex == -1 {
		return nil, fmt.Errorf("template is missing the %s placeholder", messagePlaceholder)
	}
	if promptIndex == 0 || messageIndex == 0 {
		return nil, fmt.Errorf("template must start with a program word, not a placeholder")
	}
	if messageIndex < promptIndex {
		return nil, fmt.Errorf("%s must come before %s", promptPlaceholder, messagePlaceholder)
	}

	return words, nil
}
