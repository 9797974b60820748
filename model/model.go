// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the validated in-memory form of an Apache httpd
// module description.
//
// A description is an XML document naming the module, listing the
// configuration directives it exposes and the lifecycle hooks it
// registers. The extract package turns such a document into a [Module];
// generators turn a [Module] into source code.
package model

import "slices"

// Module is the fully validated representation of one module description.
type Module struct {
	// Name is the module identifier (e.g., "sample_module").
	Name string `yaml:"name"`

	// Directives lists configuration directives in document order.
	Directives []Directive `yaml:"directives"`

	// Hooks lists lifecycle hooks in document order.
	Hooks []Hook `yaml:"hooks"`
}

// Directive is a configuration setting exposed by the module.
type Directive struct {
	// Name is the directive keyword as written in httpd.conf (e.g., "Foo").
	Name string `yaml:"name"`

	// Type is the argument-parsing category (e.g., "TAKE1", "FLAG").
	// It is passed through verbatim.
	Type string `yaml:"type"`

	// Scope is the configuration context where the directive is allowed.
	Scope Scope `yaml:"scope"`

	// Description is the optional help text.
	Description string `yaml:"description,omitempty"`

	// Values lists the text of every <value> element, in document order.
	Values []string `yaml:"values,omitempty"`
}

// Hook is a lifecycle callback registration.
type Hook struct {
	// Name is the callback function identifier.
	Name string `yaml:"name"`

	// Type is the registration function to invoke (e.g., "ap_hook_handler").
	Type string `yaml:"type"`

	Predecessor string `yaml:"predecessor"`
	Successor   string `yaml:"successor"`

	// Position is passed through without validation.
	Position string `yaml:"position"`
}

// Hook ordering defaults applied when the corresponding element is absent.
const (
	DefaultPredecessor = "NULL"
	DefaultSuccessor   = "NULL"
	DefaultPosition    = "MIDDLE"
)

// Scope is the configuration-file context in which a directive may appear.
type Scope string

const (
	ScopeRsrcConf   Scope = "RSRC_CONF"
	ScopeAccessConf Scope = "ACCESS_CONF"
	ScopeOrOptions  Scope = "OR_OPTIONS"
	ScopeOrFileInfo Scope = "OR_FILEINFO"
	ScopeOrIndexes  Scope = "OR_INDEXES"
	ScopeExecOnRead Scope = "EXEC_ON_READ"
)

// DefaultScope is assigned to directives without a <scope> element.
const DefaultScope = ScopeRsrcConf

// Scopes is the closed set of accepted scopes.
var Scopes = []Scope{
	ScopeRsrcConf,
	ScopeAccessConf,
	ScopeOrOptions,
	ScopeOrFileInfo,
	ScopeOrIndexes,
	ScopeExecOnRead,
}

// ParseScope returns s as a Scope if it belongs to [Scopes].
func ParseScope(s string) (Scope, error) {
	scope := Scope(s)
	if !slices.Contains(Scopes, scope) {
		return "", &InvalidScopeError{FoundScope: s}
	}
	return scope, nil
}

// String returns the scope constant as written in C.
func (s Scope) String() string {
	return string(s)
}

// ScopeNames returns the accepted scope names in declaration order.
func ScopeNames() []string {
	names := make([]string, len(Scopes))
	for i, s := range Scopes {
		names[i] = string(s)
	}
	return names
}
