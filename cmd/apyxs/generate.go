// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apyxs/apyxs/generator"
	"github.com/apyxs/apyxs/internal/description"
	"github.com/apyxs/apyxs/internal/extract"
	"github.com/apyxs/apyxs/internal/issue"
	"github.com/apyxs/apyxs/model"
)

var (
	errNoFile        = errors.New("please specify a filename for your module description (-f/--file)")
	errEscapesOutput = errors.New("file name escapes the output directory")
)

type generateFlags struct {
	file         string
	generator    string
	output       string
	outputFile   string
	options      map[string]string
	commandTable bool
	dryRun       bool
}

func (a *app) generateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate module source from a description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("generator") {
				a.cfg.Generator = flags.generator
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Output = flags.output
			}
			if cmd.Flags().Changed("command-table") {
				a.cfg.CommandTable = flags.commandTable
			}
			options := maps.Clone(a.cfg.Options)
			if options == nil {
				options = make(map[string]string)
			}
			maps.Copy(options, flags.options)
			return a.runGenerate(cmd, flags.file, generator.Config{
				OutputFile:   flags.outputFile,
				CommandTable: a.cfg.CommandTable,
				Options:      options,
			}, flags.dryRun)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "module description (XML)")
	cmd.Flags().StringVarP(&flags.generator, "generator", "g", "httpd", "generator to run")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default: stdout)")
	cmd.Flags().StringVar(&flags.outputFile, "output-file", "", "file name inside the output directory (default: per generator)")
	cmd.Flags().StringToStringVar(&flags.options, "set", nil, "generator option as key=value (repeatable)")
	cmd.Flags().BoolVar(&flags.commandTable, "command-table", false, "render the directive command table")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print generated files without writing them")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, file string, genCfg generator.Config, dryRun bool) error {
	doc, m, err := a.assemble(file)
	if err != nil {
		return err
	}

	gen, err := generator.Lookup(a.cfg.Generator)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("select generator").
			WithSuggestion("Run 'apyxs generators' to list the available generators").
			Wrap(err).
			BuildError()
	}

	genCfg.Source = doc.Source
	out, err := gen.Generate(cmd.Context(), m, genCfg)
	if err != nil {
		return issue.WrapWithContext(err, "generate "+gen.Metadata().Name+" output", file)
	}

	if dryRun || a.cfg.Output == "" {
		for _, name := range out.Names() {
			if _, err := a.stdout.Write(out.Files[name]); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range out.Names() {
		if !filepath.IsLocal(name) {
			return issue.NewErrorContext().
				WithOperation("write generated file").
				WithResource(name).
				WithSuggestion("Use a plain file name for --output-file").
				Wrap(fmt.Errorf("%w: %q", errEscapesOutput, name)).
				BuildError()
		}
	}

	if err := os.MkdirAll(a.cfg.Output, 0o755); err != nil {
		return issue.WrapWithContext(err, "create output directory", a.cfg.Output)
	}
	for _, name := range out.Names() {
		path := filepath.Join(a.cfg.Output, name)
		if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
			return issue.WrapWithContext(err, "write generated file", path)
		}
		a.logger.Info("wrote file", "path", path)
		fmt.Fprintln(a.stdout, successStyle.Render("✓")+" "+path)
	}
	return nil
}

// assemble loads the description at file and builds the module model.
func (a *app) assemble(file string) (*description.Document, *model.Module, error) {
	if file == "" {
		return nil, nil, &ExitError{Code: exitUsage, Err: errNoFile}
	}
	a.logger.Info("using file", "path", file)

	doc, err := description.Load(file)
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("read module description").
			WithResource(file).
			WithSuggestion("Check that the file exists and contains well-formed XML").
			Wrap(err).
			BuildError()
	}

	m, err := extract.New(extract.Options{Logger: a.logger}).Assemble(doc)
	if err != nil {
		return nil, nil, issue.FromExtraction(err, file)
	}
	return doc, m, nil
}
