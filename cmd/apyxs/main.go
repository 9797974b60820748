// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command apyxs generates Apache httpd module scaffolding from an XML
// module description.
//
// Usage:
//
//	apyxs generate -f module.xml [flags]
//	apyxs validate -f module.xml
//	apyxs generators
//
// Generate flags:
//
//	-f, --file           Module description (required)
//	-g, --generator      Generator to run (default: httpd)
//	-o, --output         Output directory (default: stdout)
//	--output-file        File name inside the output directory
//	--set key=value      Generator option, repeatable (e.g. includes=http_log.h)
//	--command-table      Render the directive command table
//	--dry-run            Print to stdout without writing files
//
// Global flags:
//
//	--config             Config file (default: ./.apyxs.toml if present)
//	--log-level          debug, info, warn or error
//	-v, --verbose        Shorthand for --log-level debug
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := fang.Execute(
		context.Background(),
		a.rootCmd(),
		fang.WithVersion(versionString()),
		fang.WithErrorHandler(a.renderError),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func versionString() string {
	if version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
