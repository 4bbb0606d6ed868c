// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package bytes_test

import (
	"testing"

	"github.com/shocklang/shocked/utils/bytes"
	"gotest.tools/v3/assert"
)

func TestHexPrint(t *testing.T) {
	t.Parallel()
	assert.Equal(t, bytes.HexPrint(nil), "[]")
	assert.Equal(t, bytes.HexPrint([]byte("\x1b[A")), "[0x1b, 0x5b, 0x41]")
}

func TestClear(t *testing.T) {
	t.Parallel()
	b := []byte("qwerty")
	bytes.Clear(b, 3)
	assert.DeepEqual(t, b, []byte{0, 0, 0, 'r', 't', 'y'})
	bytes.Clear(b, 100)
	assert.DeepEqual(t, b, make([]byte, 6))
}
