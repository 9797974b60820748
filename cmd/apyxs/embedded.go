// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/apyxs/apyxs/generator"
	"github.com/apyxs/apyxs/generators/httpd"
	"github.com/apyxs/apyxs/generators/manifest"
)

func init() {
	generator.Register(httpd.NewGenerator())
	generator.Register(manifest.NewGenerator())
}
