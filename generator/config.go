// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Config contains generator configuration.
type Config struct {
	// OutputFile overrides the generator's default file name (optional).
	OutputFile string

	// Source is the description source (for headers).
	Source string

	// CommandTable enables the directive command table in targets that
	// support it.
	CommandTable bool

	// Options contains target-specific options (CLI --set key=value or
	// the [options] table of the config file).
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
