// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package keys_test

import (
	"testing"

	"github.com/shocklang/shocked/keys"
	"gotest.tools/v3/assert"
)

func TestKeyString(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		key      keys.Key
		expected string
	}{
		{key: keys.Of('a'), expected: "a"},
		{key: keys.Of('Q'), expected: "Q"},
		{key: keys.Of(' '), expected: " "},
		{key: keys.Of('€'), expected: "€"},
		{key: keys.Of('\u200b'), expected: `'\u200b'`},
		{key: keys.Key{Code: keys.Ctrl, Rune: 'c'}, expected: "^C"},
		{key: keys.Key{Code: keys.Ctrl, Rune: '@'}, expected: "^@"},
		{key: keys.Key{Code: keys.Up}, expected: "<Up>"},
		{key: keys.Key{Code: keys.PageDown}, expected: "<PageDown>"},
		{key: keys.Key{Code: keys.F1}, expected: "<F1>"},
		{key: keys.Key{Code: keys.F12}, expected: "<F12>"},
		{key: keys.Key{Code: keys.Escape}, expected: "<Escape>"},
		{key: keys.Key{Code: keys.Unknown}, expected: "<Unknown>"},
	} {
		assert.Equal(t, tc.key.String(), tc.expected)
	}
}

func TestKeyIs(t *testing.T) {
	t.Parallel()
	assert.Assert(t, keys.Of('q').Is('q'))
	assert.Assert(t, !keys.Of('Q').Is('q'))
	assert.Assert(t, !keys.Key{Code: keys.Ctrl, Rune: 'q'}.Is('q'), "ctrl+q is not q")
}

func TestCodeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, keys.Rune.String(), "Rune")
	assert.Equal(t, keys.F7.String(), "F7")
	assert.Equal(t, keys.Code(1000).String(), "Code(1000)")
}
