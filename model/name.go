// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"regexp"
	"slices"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReservedNames are identifiers a module may not take: C keywords, the
// httpd module type and the symbols every generated declaration refers to.
var ReservedNames = []string{
	// httpd
	"module",
	"AP_MODULE_DECLARE_DATA",
	"STANDARD20_MODULE_STUFF",
	"create_dir_conf",
	"merge_dir_conf",
	"create_server_conf",
	"merge_server_conf",
	"module_cmds",
	"register_hooks",

	// C99
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
}

// IsReservedName reports whether name is in [ReservedNames].
func IsReservedName(name string) bool {
	return slices.Contains(ReservedNames, name)
}

// ValidateName checks that name can be used as the module's C identifier.
func ValidateName(name string) error {
	if !identifierPattern.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "not a C identifier"}
	}
	if IsReservedName(name) {
		return &InvalidNameError{Name: name, Reason: "reserved identifier"}
	}
	return nil
}
