// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"strings"
	"syscall"
	"testing"

	"gotest.tools/v3/assert"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, syscall.EIO }

func TestStartRawRestoresWhenFlushFails(t *testing.T) {
	t.Parallel()
	term, err := NewTestTerminal(strings.NewReader(""), brokenWriter{}, func() Size { return Size{Height: 5, Width: 20} })
	assert.NilError(t, err)
	restored := 0
	term.restore = func() { restored++ }

	restore, err := term.StartRaw()
	assert.ErrorIs(t, err, syscall.EIO)
	assert.Assert(t, restore == nil)
	assert.Equal(t, restored, 1, "raw mode must be undone before StartRaw returns an error")

	term.Close()
	assert.Equal(t, restored, 1)
}
