// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "fmt"

// MissingNameError reports a description without a top-level <name>.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "module description has no <name> element"
}

// MissingConfigurationError reports a description without a top-level
// <configuration> element.
type MissingConfigurationError struct{}

func (e *MissingConfigurationError) Error() string {
	return "module description has no <configuration> element"
}

// MalformedDirectiveError reports a directive lacking a required child.
type MalformedDirectiveError struct {
	// Index is the zero-based position of the directive in document order.
	Index int

	// Field is the missing child element ("name" or "type").
	Field string
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("directive #%d is missing required <%s> element", e.Index+1, e.Field)
}

// InvalidScopeError reports a <scope> value outside [Scopes].
type InvalidScopeError struct {
	FoundScope string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid directive scope %q", e.FoundScope)
}

// MalformedHookError reports a hook lacking a required child.
type MalformedHookError struct {
	Index int
	Field string
}

func (e *MalformedHookError) Error() string {
	return fmt.Sprintf("hook #%d is missing required <%s> element", e.Index+1, e.Field)
}

// InvalidNameError reports a <name> that cannot be used as the module's
// C identifier.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Name, e.Reason)
}
