// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package keys

import (
	"strconv"
	"unicode"
)

// Code is the kind of key which was pressed. Most keys are [Rune], in which case the character is stored in
// [Key.Rune].
type Code int

const (
	Rune Code = iota
	// Ctrl is a control character, [Key.Rune] holds the lowercase letter, so ctrl+c is {Ctrl, 'c'}.
	Ctrl
	Enter
	Tab
	Backtab
	Backspace
	Escape
	Delete
	Insert
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	// Unknown is an escape sequence the decoder could not place.
	Unknown
)

var names = map[Code]string{
	Enter:     "Enter",
	Tab:       "Tab",
	Backtab:   "Backtab",
	Backspace: "Backspace",
	Escape:    "Escape",
	Delete:    "Delete",
	Insert:    "Insert",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Unknown:   "Unknown",
}

func (c Code) String() string {
	switch {
	case c == Rune:
		return "Rune"
	case c == Ctrl:
		return "Ctrl"
	case c >= F1 && c <= F12:
		return "F" + strconv.Itoa(int(c-F1)+1)
	}
	if name, ok := names[c]; ok {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Key is a single decoded key press.
type Key struct {
	Code Code
	Rune rune
}

// Of is the key for a plain character.
func Of(r rune) Key {
	return Key{Code: Rune, Rune: r}
}

// Is reports whether this key is the plain character r, named keys never match.
func (k Key) Is(r rune) bool {
	return k.Code == Rune && k.Rune == r
}

// String is how a key is echoed back to the user. Characters are themselves, control keys use caret notation
// and everything else is the key name in angle brackets.
func (k Key) String() string {
	switch k.Code {
	case Rune:
		if !unicode.IsPrint(k.Rune) {
			return strconv.QuoteRuneToASCII(k.Rune)
		}
		return string(k.Rune)
	case Ctrl:
		return "^" + string(unicode.ToUpper(k.Rune))
	default:
		return "<" + k.Code.String() + ">"
	}
}
