// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"github.com/apyxs/apyxs/model"
)

// RenderDeclaration renders the module declaration record. Only the module
// name is interpolated; every other slot names a fixed symbol.
func RenderDeclaration(m *model.Module) string {
	lines := []string{
		fmt.Sprintf("module AP_MODULE_DECLARE_DATA %s = {", m.Name),
		indent + "STANDARD20_MODULE_STUFF,",
		indent + CreateDirConfigFunc + ",",
		indent + MergeDirConfigFunc + ",",
		indent + CreateServerConfigFunc + ",",
		indent + MergeServerConfigFunc + ",",
		indent + CommandTable + ",",
		indent + RegisterHooksFunc,
		"};",
	}
	return strings.Join(lines, "\n")
}

// RenderHookRegistration renders the hook registration function with one
// call per hook, in order. Each call passes name, predecessor, successor
// and position verbatim.
func RenderHookRegistration(hooks []model.Hook) string {
	lines := make([]string, 0, len(hooks)+2)
	lines = append(lines, fmt.Sprintf("static void %s(apr_pool_t *p) {", RegisterHooksFunc))
	for _, h := range hooks {
		args := strings.Join([]string{h.Name, h.Predecessor, h.Successor, h.Position}, ", ")
		lines = append(lines, fmt.Sprintf("%s%s(%s);", indent, h.Type, args))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
