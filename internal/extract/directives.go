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

// Directives returns every <directive> under the root's <configuration>
// element, at any depth, in document order.
func Directives(root description.Element) ([]model.Directive, error) {
	cfg, ok := root.Find("configuration")
	if !ok {
		return nil, &model.MissingConfigurationError{}
	}

	elements := cfg.FindAll("directive")
	directives := make([]model.Directive, 0, len(elements))
	for i, el := range elements {
		d, err := directive(i, el)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func directive(index int, el description.Element) (model.Directive, error) {
	name, ok := text(el, "name")
	if !ok {
		return model.Directive{}, &model.MalformedDirectiveError{Index: index, Field: "name"}
	}
	typ, ok := text(el, "type")
	if !ok {
		return model.Directive{}, &model.MalformedDirectiveError{Index: index, Field: "type"}
	}

	scope := model.DefaultScope
	if s, ok := el.Find("scope"); ok {
		parsed, err := model.ParseScope(s.Text())
		if err != nil {
			return model.Directive{}, err
		}
		scope = parsed
	}

	var values []string
	for _, v := range el.FindAll("value") {
		values = append(values, v.Text())
	}

	return model.Directive{
		Name:        name,
		Type:        typ,
		Scope:       scope,
		Description: optional(el, "description", ""),
		Values:      values,
	}, nil
}
