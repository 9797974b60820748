// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import "fmt"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// ExitError signals a specific exit code without calling os.Exit in RunE.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
