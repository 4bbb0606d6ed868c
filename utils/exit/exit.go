// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package exit

import (
	"fmt"
	"log/slog"
	"os"
)

// OnError should be called when there is no way for the program to continue, if err is not nil the program
// will print the error to stderr and exit.
//
// Callers own the terminal, so any raw mode must already be restored before this is reached, otherwise the
// message lands in a terminal which no longer translates newlines.
func OnError(err error) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(errCode)
	}
}

// OnErrorMsg is like [OnError] but has a custom message when err is not nil.
func OnErrorMsg(err error, msg string) {
	if err != nil {
		slog.Error(fmt.Sprintf("Exiting with %d", errCode), "err", err.Error(), "msg", msg)
		fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err.Error())
		os.Exit(errCode)
	}
}

// Success is a alias for [os.Exit(0)].
func Success() {
	os.Exit(0)
}

// Silent exits without printing anything, used after `--help` has already written the usage.
func Silent() {
	os.Exit(errCode)
}

const errCode = 1
