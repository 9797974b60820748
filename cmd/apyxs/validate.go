// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a module description without generating code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, m, err := a.assemble(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s %s: %d directive(s), %d hook(s)\n",
				successStyle.Render("✓"), m.Name, len(m.Directives), len(m.Hooks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "module description (XML)")
	return cmd
}
