// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package extract builds a validated [model.Module] from a module
// description tree.
//
// Extraction is fail-fast: the first invalid entity aborts the run and no
// partial result is returned. Errors are the typed values declared in the
// model package, returned unwrapped so callers can match them with
// errors.As.
package extract

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/apyxs/apyxs/internal/description"
	"github.com/apyxs/apyxs/model"
)

// Options configures an [Assembler].
type Options struct {
	// Logger receives debug output about extracted entities.
	// If nil, output is discarded.
	Logger *log.Logger
}

// Assembler runs the three extractors against one description.
type Assembler struct {
	logger *log.Logger
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Assembler{logger: logger}
}

// Assemble builds the module model from doc.
func (a *Assembler) Assemble(doc *description.Document) (*model.Module, error) {
	return a.AssembleElement(doc.Root())
}

// AssembleElement builds the module model from a description root.
// Extractors run in order name, directives, hooks; the first failure is
// returned unchanged.
func (a *Assembler) AssembleElement(root description.Element) (*model.Module, error) {
	name, err := Name(root)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("module name", "name", name)

	directives, err := Directives(root)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration directives", "count", len(directives))

	hooks, err := Hooks(root)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("hooks", "count", len(hooks))

	return &model.Module{
		Name:       name,
		Directives: directives,
		Hooks:      hooks,
	}, nil
}

// Assemble builds the module model from doc without logging.
func Assemble(doc *description.Document) (*model.Module, error) {
	return New(Options{}).Assemble(doc)
}

// Name returns the text of the root's <name> child. The name must be a
// usable C identifier.
func Name(root description.Element) (string, error) {
	name, ok := text(root, "name")
	if !ok {
		return "", &model.MissingNameError{}
	}
	if err := model.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// text returns the non-empty text of the element at path. An element
// with no character data counts as absent.
func text(el description.Element, path string) (string, bool) {
	child, ok := el.Find(path)
	if !ok {
		return "", false
	}
	s := child.Text()
	if s == "" {
		return "", false
	}
	return s, true
}

// optional returns the text at path, or def when the element is absent.
func optional(el description.Element, path, def string) string {
	if s, ok := text(el, path); ok {
		return s
	}
	return def
}
