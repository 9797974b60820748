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

	"github.com/apyxs/apyxs/model"
)

// FromExtraction wraps a model extraction error with remediation hints
// for the description at resource. Errors outside the extraction taxonomy
// are wrapped without suggestions.
func FromExtraction(err error, resource string) *ActionableError {
	if err == nil {
		return nil
	}

	ctx := NewErrorContext().
		WithOperation("extract module").
		WithResource(resource).
		Wrap(err)

	var (
		missingName   *model.MissingNameError
		missingConfig *model.MissingConfigurationError
		badDirective  *model.MalformedDirectiveError
		badScope      *model.InvalidScopeError
		badHook       *model.MalformedHookError
		badName       *model.InvalidNameError
	)
	switch {
	case errors.As(err, &missingName):
		ctx.WithSuggestion("Add a <name> element directly under the root, e.g. <name>example_module</name>")
	case errors.As(err, &missingConfig):
		ctx.WithSuggestion("Add a <configuration> element directly under the root; it may be empty")
	case errors.As(err, &badDirective):
		ctx.WithSuggestion(fmt.Sprintf("Give directive #%d a non-empty <%s> element", badDirective.Index+1, badDirective.Field))
	case errors.As(err, &badScope):
		ctx.WithSuggestion("Use one of: " + strings.Join(model.ScopeNames(), ", "))
		ctx.WithSuggestion(fmt.Sprintf("Omit <scope> to default to %s", model.DefaultScope))
	case errors.As(err, &badName):
		ctx.WithSuggestion("Use a C identifier of letters, digits and underscores that does not start with a digit")
		if model.IsReservedName(badName.Name) {
			ctx.WithSuggestion(fmt.Sprintf("%q is reserved; add a suffix such as %q", badName.Name, badName.Name+"_module"))
		}
	case errors.As(err, &badHook):
		ctx.WithSuggestion(fmt.Sprintf("Give hook #%d a non-empty <%s> element", badHook.Index+1, badHook.Field))
	}

	return ctx.Build()
}
