// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package httpd generates Apache httpd module scaffolding in C.
package httpd

import (
	"context"
	"strings"

	"github.com/apyxs/apyxs/generator"
	"github.com/apyxs/apyxs/internal/codegen"
	"github.com/apyxs/apyxs/model"
)

// OptionIncludes names the option holding extra headers to include,
// comma separated (e.g. "http_log.h,http_request.h").
const OptionIncludes = "includes"

// Generator implements [generator.Generator] for httpd C modules.
type Generator struct{}

// NewGenerator creates a new httpd generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "httpd",
		Version:        "1.0.0",
		Description:    "Generate Apache httpd module scaffolding in C",
		FileExtensions: []string{".c"},
		URL:            "https://github.com/apyxs/apyxs",
	}
}

// Generate produces the module source file.
func (g *Generator) Generate(ctx context.Context, m *model.Module, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gen := codegen.New(m, codegen.Config{
		Source:       cfg.Source,
		CommandTable: cfg.CommandTable,
		Includes:     splitList(cfg.Option(OptionIncludes, "")),
	})
	out, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	filename := FileName(m.Name)
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}
	return generator.Single(filename, out.Source), nil
}

// FileName returns the conventional source file name for a module:
// "sample_module" becomes "mod_sample.c".
func FileName(moduleName string) string {
	stem := strings.TrimSuffix(moduleName, "_module")
	if stem == "" {
		stem = moduleName
	}
	return "mod_" + stem + ".c"
}

func splitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
