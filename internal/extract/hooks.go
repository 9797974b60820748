// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package extract

import (
	"github.com/apyxs/apyxs/internal/description"
	"github.com/apyxs/apyxs/model"
)

// Hooks returns every <hook> under the root's <hooks> element in document
// order. A description without <hooks> yields an empty slice.
func Hooks(root description.Element) ([]model.Hook, error) {
	section, ok := root.Find("hooks")
	if !ok {
		return []model.Hook{}, nil
	}

	elements := section.FindAll("hook")
	hooks := make([]model.Hook, 0, len(elements))
	for i, el := range elements {
		name, ok := text(el, "name")
		if !ok {
			return nil, &model.MalformedHookError{Index: i, Field: "name"}
		}
		typ, ok := text(el, "type")
		if !ok {
			return nil, &model.MalformedHookError{Index: i, Field: "type"}
		}
		hooks = append(hooks, model.Hook{
			Name:        name,
			Type:        typ,
			Predecessor: optional(el, "predecessor", model.DefaultPredecessor),
			Successor:   optional(el, "successor", model.DefaultSuccessor),
			Position:    optional(el, "position", model.DefaultPosition),
		})
	}
	return hooks, nil
}
