// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegen renders Apache httpd module scaffolding in C from a
// validated module model.
//
// The two core fragments, the module declaration and the hook
// registration function, are produced by pure functions of the model
// ([RenderDeclaration] and [RenderHookRegistration]). [Generator] stitches
// them into a complete source file.
package codegen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/apyxs/apyxs/model"
)

// Well-known symbols referenced by the generated module declaration.
// The registration function and the command table are emitted under the
// same names, so the fragments always agree.
const (
	CreateDirConfigFunc    = "create_dir_conf"
	MergeDirConfigFunc     = "merge_dir_conf"
	CreateServerConfigFunc = "create_server_conf"
	MergeServerConfigFunc  = "merge_server_conf"
	CommandTable           = "module_cmds"
	RegisterHooksFunc      = "register_hooks"
)

// indent is the statement indentation used in generated C.
const indent = "    "

// Includes lists the httpd headers every generated module needs.
var Includes = []string{
	"httpd.h",
	"http_config.h",
	"http_protocol.h",
	"ap_config.h",
}

// Config controls code generation behavior.
type Config struct {
	// Source describes where the description came from (for header comment).
	Source string

	// CommandTable enables rendering of the directive command table.
	// The table layout is a best guess at httpd's command_rec conventions
	// and is off by default.
	CommandTable bool

	// Includes lists extra headers emitted after [Includes].
	Includes []string
}

// Output contains the generated code.
type Output struct {
	// Source is the complete C source file.
	Source []byte
}

// Generator produces C code from a module model.
type Generator struct {
	module *model.Module
	config Config
}

// New creates a new Generator.
func New(m *model.Module, cfg Config) *Generator {
	return &Generator{module: m, config: cfg}
}

// Generate produces the module source file.
func (g *Generator) Generate() (*Output, error) {
	if g.module == nil || g.module.Name == "" {
		return nil, fmt.Errorf("generate: module has no name")
	}

	var buf bytes.Buffer
	buf.WriteString(g.fileHeader())
	buf.WriteString("\n")

	for _, inc := range slices.Concat(Includes, g.config.Includes) {
		fmt.Fprintf(&buf, "#include %q\n", inc)
	}
	buf.WriteString("\n")

	if g.config.CommandTable {
		buf.WriteString(RenderCommandTable(g.module.Directives))
		buf.WriteString("\n\n")
	}

	buf.WriteString(RenderHookRegistration(g.module.Hooks))
	buf.WriteString("\n\n")
	buf.WriteString(RenderDeclaration(g.module))
	buf.WriteString("\n")

	return &Output{Source: buf.Bytes()}, nil
}

func (g *Generator) fileHeader() string {
	lines := []string{"/* Code generated by apyxs. DO NOT EDIT."}
	lines = append(lines, fmt.Sprintf(" * Module: %s", g.module.Name))
	if g.config.Source != "" {
		lines = append(lines, fmt.Sprintf(" * Source: %s", g.config.Source))
	}
	lines = append(lines, " */", "")
	return strings.Join(lines, "\n")
}
