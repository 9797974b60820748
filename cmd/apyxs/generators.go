// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apyxs/apyxs/generator"
)

func (a *app) generatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List available generators",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, g := range generator.All() {
				meta := g.Metadata()
				fmt.Fprintf(a.stdout, "%-10s %s %s\n",
					titleStyle.Render(meta.Name),
					meta.Description,
					mutedStyle.Render("("+strings.Join(meta.FileExtensions, ", ")+")"))
			}
			return nil
		},
	}
}
