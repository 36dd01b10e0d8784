// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pinentry-menu.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
launcher: fuzzel
log_file: /tmp/pinentry-menu.log
runners:
  - name: mymenu
    template: "mymenu --ask {prompt} --detail {message}"
  - name: rofi
    template: "rofi -dmenu -password -theme pin -p {prompt} -mesg {message}"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Launcher != "fuzzel" {
		t.Errorf("Launcher = %q, want %q", cfg.Launcher, "fuzzel")
	}
	if cfg.LogFile != "/tmp/pinentry-menu.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/pinentry-menu.log")
	}
	if len(cfg.Runners) != 2 {
		t.Fatalf("len(Runners) = %d, want 2", len(cfg.Runners))
	}
	if cfg.Runners[0].Name != "mymenu" {
		t.Errorf("Runners[0].Name = %q, want %q", cfg.Runners[0].Name, "mymenu")
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Error("LoadFile() with missing file should return error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "launcher: [unclosed")
		_, err := LoadFile(path)
		if err == nil {
			t.Error("LoadFile() with malformed YAML should return error")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("flag path wins over environment", func(t *testing.T) {
		flagPath := writeConfig(t, "launcher: rofi\n")
		envPath := writeConfig(t, "launcher: wofi\n")
		t.Setenv(EnvVar, envPath)

		cfg, err := Load(flagPath)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Launcher != "rofi" {
			t.Errorf("Launcher = %q, want flag path to win", cfg.Launcher)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		envPath := writeConfig(t, "launcher: wofi\n")
		t.Setenv(EnvVar, envPath)

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Launcher != "wofi" {
			t.Errorf("Launcher = %q, want %q", cfg.Launcher, "wofi")
		}
	})

	t.Run("no location means empty config", func(t *testing.T) {
		t.Setenv(EnvVar, "")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Launcher != "" || cfg.LogFile != "" || len(cfg.Runners) != 0 {
			t.Errorf("Load() without a file = %+v, want zero config", cfg)
		}
	})
}
