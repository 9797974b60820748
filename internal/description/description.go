// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package description loads XML module descriptions into a queryable tree.
package description

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// MaxFileSize is the largest description accepted by [Load].
const MaxFileSize = 4 << 20

// Element is the query surface extractors need from a description tree.
type Element interface {
	// Tag returns the element name.
	Tag() string

	// Text returns the element character data with surrounding
	// whitespace removed.
	Text() string

	// Find returns the first element matching path, evaluated relative
	// to this element. A bare tag ("name") selects a direct child.
	Find(path string) (Element, bool)

	// FindAll returns every descendant element named tag, in document
	// order and at any depth.
	FindAll(tag string) []Element
}

// Document is a parsed module description.
type Document struct {
	// Source describes where the description was loaded from.
	Source string

	doc *etree.Document
}

// Load reads and parses the description at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, info.Size(), MaxFileSize)
	}

	// The stat size can be stale or zero for special files.
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: file size exceeds maximum %d bytes", path, MaxFileSize)
	}
	return Parse(data, fmt.Sprintf("file://%s", path))
}

// Parse parses an in-memory description. The source label is kept for
// diagnostics and generated headers.
func Parse(data []byte, source string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse %s: %w", source, errors.New("document has no root element"))
	}
	return &Document{Source: source, doc: doc}, nil
}

// Root returns the document element.
func (d *Document) Root() Element {
	return &node{el: d.doc.Root()}
}

// node adapts an etree element to [Element].
type node struct {
	el *etree.Element
}

func (n *node) Tag() string {
	return n.el.Tag
}

func (n *node) Text() string {
	return strings.TrimSpace(n.el.Text())
}

func (n *node) Find(path string) (Element, bool) {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil, false
	}
	found := n.el.FindElementPath(p)
	if found == nil {
		return nil, false
	}
	return &node{el: found}, true
}

func (n *node) FindAll(tag string) []Element {
	found := n.el.FindElements(".//" + tag)
	out := make([]Element, 0, len(found))
	for _, el := range found {
		if el == n.el {
			continue
		}
		out = append(out, &node{el: el})
	}
	return out
}
