// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import (
	"strconv"
)

// Helper section

var Clear = EraseInDisplay(CursorScreen)
var Home = CursorPosition(1, 1)

type ED int // Erase in Display

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	CursorToScreenEnd         ED = 0
	CursorToScreenBegin       ED = 1
	CursorScreen              ED = 2
	CursorScreenAndScrollBack ED = 3

	// FormattingReset turns all attributes off, including colour, bold, etc.
	FormattingReset = CSI + "0m"

	// BoldOn and BoldOff are the curses style attribute toggles, unlike [Bold] they don't reset colours.
	BoldOn  = CSI + "1m"
	BoldOff = CSI + "22m"
)

// Compacted when defaults are passed, some chars may be elided:
//
// > The values are 1-based, and default to '1' (top left corner) if omitted. A sequence such as 'CSI ;5H' is
// > a synonym for 'CSI 1;5H' as well as 'CSI 17;H' is the same as 'CSI 17H' and 'CSI 17;1H'. [wikipedia]
//
// [wikipedia]: https://en.wikipedia.org/wiki/ANSI_escape_code
func CursorPosition(row, column int) string {
	if row <= 0 || column <= 0 {
		return ""
	}
	if row == 1 && column == 1 {
		return CSI + "H"
	} else if row == 1 {
		return CSI + ";" + i(column) + "H"
	} else if column == 1 {
		return CSI + i(row) + "H"
	}
	return CSI + i(row) + ";" + i(column) + "H"
}

func EraseInDisplay(n ED) string { return CSI + i(int(n)) + "J" }

// helpful short hands inside the package

var i = strconv.Itoa
var r = FormattingReset

// Colours Section:

func Cyan(s string) string  { return CSI + "96m" + s + r }
func Gray(s string) string  { return CSI + "90m" + s + r }
func Green(s string) string { return CSI + "92m" + s + r }
func Red(s string) string   { return CSI + "91m" + s + r }

// Fonts:

func Bold(s string) string { return CSI + "1m" + s + r }
