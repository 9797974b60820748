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

// commandInitPrefix is prepended to a directive type to form the
// AP_INIT_* initializer macro.
const commandInitPrefix = "AP_INIT_"

var cStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// RenderCommandTable renders a command_rec table with one entry per
// directive. Setter functions are left NULL for the module author to fill
// in; directive values are not rendered.
func RenderCommandTable(directives []model.Directive) string {
	lines := make([]string, 0, len(directives)+3)
	lines = append(lines, fmt.Sprintf("static const command_rec %s[] = {", CommandTable))
	for _, d := range directives {
		lines = append(lines, fmt.Sprintf("%s%s(\"%s\", NULL, NULL, %s, \"%s\"),",
			indent, initMacro(d.Type), cStringEscaper.Replace(d.Name), d.Scope, cStringEscaper.Replace(d.Description)))
	}
	lines = append(lines, indent+"{ NULL }", "};")
	return strings.Join(lines, "\n")
}

// initMacro maps a directive type such as TAKE1 to AP_INIT_TAKE1. Types
// that already carry the prefix are returned unchanged.
func initMacro(typ string) string {
	if strings.HasPrefix(typ, commandInitPrefix) {
		return typ
	}
	return commandInitPrefix + typ
}
