// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import "fmt"

const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

func Version() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// Banner is the first line printed when the program starts.
func Banner() string {
	return "shocked version " + Version() + "\n"
}
