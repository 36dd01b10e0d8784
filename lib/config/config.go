// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/pinentry-menu/lib/runner"
)

// EnvVar names the environment variable that locates the config file
// when no --config flag is given.
const EnvVar = "PINENTRY_MENU_CONFIG"

// Config is the full configuration. Every field is optional; the zero
// value means "built-in catalog, launcher chosen by scan, no debug
// log".
type Config struct {
	// Launcher is the preferred launcher name. The command-line
	// argument and PINENTRY_MENU_LAUNCHER take precedence over it.
	Launcher string `yaml:"launcher"`

	// LogFile receives JSON debug log records when set. The --log-file
	// flag takes precedence.
	LogFile string `yaml:"log_file"`

	// Runners extends or overrides the built-in launcher catalog.
	// Entries are validated when the catalog is built, not here.
	Runners []runner.Spec `yaml:"runners"`
}

// Load reads the config file named by flagPath, falling back to the
// PINENTRY_MENU_CONFIG environment variable. When neither names a
// file, an empty Config is returned: the config file is optional,
// unlike the launcher catalog it feeds.
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and parses a specific config file. The file is the
// single source of truth for what it names; environment variables do
// not override its values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
