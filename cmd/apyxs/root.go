// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apyxs/apyxs/internal/config"
	"github.com/apyxs/apyxs/internal/issue"
)

// app carries state shared by all subcommands for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	logLevel string
	verbose  bool

	cfg    *config.Config
	logger *log.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.DefaultConfig(),
		logger: log.New(io.Discard),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apyxs",
		Short: "Generate Apache httpd module scaffolding",
		Long: titleStyle.Render("apyxs") + mutedStyle.Render(" - Apache httpd module scaffolding") + `

apyxs reads an XML module description (name, configuration directives and
hooks) and generates the C module declaration and hook registration code.

` + mutedStyle.Render("Examples:") + `
  apyxs generate -f module.xml             Print mod_<name>.c to stdout
  apyxs generate -f module.xml -o src      Write mod_<name>.c into src/
  apyxs validate -f module.xml             Check the description only
  apyxs generators                         List available generators`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./"+config.FileName+" if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.generatorsCmd())
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.verbose {
		level = "debug"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("invalid --log-level: %w", err)}
	}

	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Prefix: "apyxs",
		Level:  parsed,
	})
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}
	return nil
}

// renderError prints command errors. Actionable errors get their
// suggestions; everything else falls back to fang's default rendering.
func (a *app) renderError(w io.Writer, styles fang.Styles, err error) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, errorStyle.Render("Error: ")+ae.Format(a.verbose))
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
