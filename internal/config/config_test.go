// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apyxs/apyxs/internal/issue"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileInDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
generator = "manifest"
output = "build"
log_level = "debug"
command_table = true
`)

	cfg, path, err := Load(LoadOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q", path)
	}

	want := &Config{Generator: "manifest", Output: "build", LogLevel: "debug", CommandTable: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Options(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
[options]
includes = "http_log.h,http_request.h"
indent = "4"
`)

	cfg, _, err := Load(LoadOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[string]string{"includes": "http_log.h,http_request.h", "indent": "4"}
	if diff := cmp.Diff(want, cfg.Options); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `generator = "manifest"`)
	t.Setenv("APYXS_GENERATOR", "httpd")
	t.Setenv("APYXS_COMMAND_TABLE", "true")

	cfg, _, err := Load(LoadOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generator != "httpd" {
		t.Errorf("Generator = %q, want httpd", cfg.Generator)
	}
	if !cfg.CommandTable {
		t.Error("CommandTable = false, want true from env")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `log_level = "warn"`)

	cfg, got, err := Load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.LogLevel != "warn" || cfg.Generator != "httpd" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	badSyntax := filepath.Join(dir, "bad.toml")
	writeFile(t, badSyntax, `generator = `)

	badLevel := filepath.Join(dir, "level.toml")
	writeFile(t, badLevel, `log_level = "loud"`)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing explicit file", path: filepath.Join(dir, "missing.toml")},
		{name: "invalid toml", path: badSyntax},
		{name: "invalid log level", path: badLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(LoadOptions{ConfigFilePath: tt.path})
			if err == nil {
				t.Fatal("expected error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error = %T, want *issue.ActionableError", err)
			}
			if len(ae.Suggestions) == 0 {
				t.Error("expected suggestions")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Generator: " ", LogLevel: "verbose"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if DefaultConfig().Validate() != nil {
		t.Error("defaults should validate")
	}
}
