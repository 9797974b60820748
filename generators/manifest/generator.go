// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package manifest writes the validated module model as YAML.
//
// The manifest is useful for reviewing what the extractors resolved
// (defaulted scopes, hook ordering hints) before generating C code.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/apyxs/apyxs/generator"
	"github.com/apyxs/apyxs/model"
)

const header = "# Code generated by apyxs. DO NOT EDIT.\n"

// OptionIndent names the option setting the YAML indentation width.
const OptionIndent = "indent"

// Generator implements [generator.Generator] for YAML manifests.
type Generator struct{}

// NewGenerator creates a new manifest generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "manifest",
		Version:        "1.0.0",
		Description:    "Write the validated module model as YAML",
		FileExtensions: []string{".yaml"},
		URL:            "https://github.com/apyxs/apyxs",
	}
}

// Generate produces <module>.yaml.
func (g *Generator) Generate(ctx context.Context, m *model.Module, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	indent, err := strconv.Atoi(cfg.Option(OptionIndent, "2"))
	if err != nil || indent < 1 {
		return nil, fmt.Errorf("option %s: want a positive integer, got %q", OptionIndent, cfg.Option(OptionIndent, ""))
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if cfg.Source != "" {
		fmt.Fprintf(&buf, "# Source: %s\n", cfg.Source)
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	filename := m.Name + ".yaml"
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}
	return generator.Single(filename, buf.Bytes()), nil
}
