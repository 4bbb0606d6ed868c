// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/shocklang/shocked/keys"
	"github.com/shocklang/shocked/terminal"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/th"
	"gotest.tools/v3/assert"
)

var size = terminal.Size{Height: 5, Width: 20}

func TestOutputIsBufferedUntilRefresh(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	term, err := terminal.NewTestTerminal(th.ChunkedReader(), stdout, func() terminal.Size { return size })
	assert.NilError(t, err)

	assert.NilError(t, term.Print("hello\n"))
	assert.Equal(t, stdout.Len(), 0)
	assert.NilError(t, term.Refresh())
	assert.Equal(t, stdout.String(), "hello\r\n")
}

func TestBold(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	term, err := terminal.NewTestTerminal(th.ChunkedReader(), stdout, func() terminal.Size { return size })
	assert.NilError(t, err)

	assert.NilError(t, term.Print("a"))
	assert.NilError(t, term.SetBold(true))
	assert.NilError(t, term.Print("b"))
	assert.NilError(t, term.SetBold(false))
	assert.NilError(t, term.Print("c"))
	term.Close()
	assert.Equal(t, stdout.String(), "a"+ansi.BoldOn+"b"+ansi.BoldOff+"c")

	screen := th.EmulateTerminal(stdout.String(), size)
	assert.DeepEqual(t, screen.Trimmed(), []string{"abc"})
	assert.DeepEqual(t, screen.TrimmedBold(), []string{" b"})
}

func TestStartRawClearsScreen(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	stdout.WriteString("previous shell output\r\n")
	term, err := terminal.NewTestTerminal(th.ChunkedReader(), stdout, func() terminal.Size { return size })
	assert.NilError(t, err)

	restore, err := term.StartRaw()
	assert.NilError(t, err)
	assert.Assert(t, bytes.HasSuffix(stdout.Bytes(), []byte(ansi.Clear+ansi.Home)), "StartRaw should flush the clear")
	assert.NilError(t, term.Print("x"))
	restore()
	restore()

	screen := th.EmulateTerminal(stdout.String(), size)
	assert.DeepEqual(t, screen.Trimmed(), []string{"x"})
}

func TestReadKeyRefreshesFirst(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	term, err := terminal.NewTestTerminal(th.ChunkedReader("\x1b[B", "q"), stdout, func() terminal.Size { return size })
	assert.NilError(t, err)

	assert.NilError(t, term.Print("prompt"))
	k, err := term.ReadKey()
	assert.NilError(t, err)
	assert.Equal(t, stdout.String(), "prompt")
	assert.Equal(t, k, keys.Key{Code: keys.Down})

	k, err = term.ReadKey()
	assert.NilError(t, err)
	assert.Assert(t, k.Is('q'))

	_, err = term.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestUpdateSize(t *testing.T) {
	t.Parallel()
	current := size
	term, err := terminal.NewTestTerminal(th.ChunkedReader(), io.Discard, func() terminal.Size { return current })
	assert.NilError(t, err)
	assert.Equal(t, term.GetSize(), size)

	current = terminal.Size{Height: 50, Width: 200}
	assert.Equal(t, term.GetSize(), size, "size is cached until updated")
	assert.NilError(t, term.UpdateSize())
	assert.Equal(t, term.GetSize(), current)
	assert.Equal(t, term.GetSize().String(), "W: 200 H: 50")
}
