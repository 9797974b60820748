// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads apyxs settings using Viper.
//
// Settings come from built-in defaults, an optional TOML file and
// APYXS_* environment variables, in increasing order of precedence.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/apyxs/apyxs/internal/issue"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = ".apyxs.toml"

	// EnvPrefix prefixes environment overrides (e.g., APYXS_GENERATOR).
	EnvPrefix = "APYXS"
)

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds apyxs settings.
type Config struct {
	// Generator is the registered generator to run.
	Generator string `mapstructure:"generator"`

	// Output is the directory generated files are written to.
	// Empty means standard output.
	Output string `mapstructure:"output"`

	// LogLevel is one of [LogLevels].
	LogLevel string `mapstructure:"log_level"`

	// CommandTable enables the directive command table.
	CommandTable bool `mapstructure:"command_table"`

	// Options are passed to the generator as target-specific options.
	Options map[string]string `mapstructure:"options"`
}

// LoadOptions configures [Load].
type LoadOptions struct {
	// ConfigFilePath is an explicit config file. It must exist.
	ConfigFilePath string

	// Dir is searched for [FileName] when ConfigFilePath is empty.
	// Defaults to the working directory.
	Dir string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator: "httpd",
		LogLevel:  "info",
	}
}

// Load resolves the configuration. It returns the config and the path of
// the file that was read, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("generator", defaults.Generator)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("command_table", defaults.CommandTable)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.ConfigFilePath
	if path == "" {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		if candidate := filepath.Join(dir, FileName); fileExists(candidate) {
			path = candidate
		}
	} else if !fileExists(path) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Omit --config to use the defaults").
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("log_level must be one of: " + strings.Join(LogLevels, ", ")).
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// Validate checks field values that Viper cannot.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Generator) == "" {
		errs = append(errs, errors.New("generator must not be empty"))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
