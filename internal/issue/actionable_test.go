// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "extract module"},
			expected: "failed to extract module",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "extract module", Resource: "./module.xml"},
			expected: "failed to extract module: ./module.xml",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "extract module",
				Resource:  "./module.xml",
				Cause:     errors.New("boom"),
			},
			expected: "failed to extract module: ./module.xml: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	root := errors.New("root cause")
	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    ".apyxs.toml",
		Suggestions: []string{"Check TOML syntax", "Remove the file"},
		Cause:       fmt.Errorf("decode: %w", root),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "\n  • Check TOML syntax\n  • Remove the file") {
		t.Errorf("Format(false) missing suggestions:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include error chain:\n%s", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:\n  1. decode: root cause\n  2. root cause") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("cause")
	ae := NewErrorContext().
		WithOperation("generate").
		WithResource("mod.xml").
		WithSuggestion("one").
		WithSuggestion("two").
		Wrap(cause).
		Build()

	if ae.Operation != "generate" || ae.Resource != "mod.xml" {
		t.Errorf("unexpected context: %+v", ae)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(ae.Suggestions))
	}
	if !errors.Is(ae, cause) {
		t.Error("errors.Is should find the cause")
	}

	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil interface")
	}
}

func TestWrapWithContext(t *testing.T) {
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("nil error should stay nil")
	}
	ae := WrapWithContext(errors.New("x"), "write output", "out/mod_a.c")
	if got := ae.Error(); got != "failed to write output: out/mod_a.c: x" {
		t.Errorf("Error() = %q", got)
	}
}
