// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shocklang/shocked/terminal"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/check"
	"pgregory.net/rapid"
)

// TestWithTimeout allows a test function to **always** run with a timeout similar to the `go test` built in
// `-timeout` flag. Anything which blocks on a key press should be wrapped in this.
func TestWithTimeout(t T, timeout time.Duration, test func()) {
	c := time.After(timeout)
	done := make(chan struct{})
	go func() {
		test()
		done <- struct{}{}
	}()
	select {
	case <-c:
		t.Fatalf("Test timed out after %s", timeout.String())
	case <-done:
	}
}

// T is the most generic test interface shared by [*testing.T] and [*rapid.T].
type T interface {
	rapid.TB
}

// ChunkedReader behaves like a terminal's stdin, each Read returns (at most) one of the chunks, as though the
// user typed each chunk as one key press. Once all the chunks are consumed it returns [io.EOF].
func ChunkedReader(chunks ...string) io.Reader {
	c := &chunked{}
	for _, chunk := range chunks {
		c.chunks = append(c.chunks, []byte(chunk))
	}
	return c
}

type chunked struct {
	chunks [][]byte
}

func (c *chunked) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if len(c.chunks[0]) == 0 {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

// Screen is the result of [EmulateTerminal], each entry is a row padded to the width of the terminal.
type Screen struct {
	Rows []string
	// Bold is the same shape as Rows but only contains the runes which were written in bold, every other
	// cell is a space.
	Bold []string
}

// Trimmed returns the rows with trailing spaces removed, and trailing empty rows dropped.
func (s Screen) Trimmed() []string {
	return trim(s.Rows)
}

// TrimmedBold is [Screen.Trimmed] for [Screen.Bold].
func (s Screen) TrimmedBold() []string {
	return trim(s.Bold)
}

func trim(rows []string) []string {
	ret := make([]string, len(rows))
	last := 0
	for i, row := range rows {
		ret[i] = strings.TrimRight(row, " ")
		if ret[i] != "" {
			last = i + 1
		}
	}
	return ret[:last]
}

// EmulateTerminal is a terminal emulator shim. Unlike a raw string buffer this will apply the ansi commands
// and control characters to move the cursor around the output space. Lines which go past the bottom scroll
// the buffer up, as a real terminal does.
//
// Since it's the target of tests it describes the minimal set of commands shocked needs: carriage return,
// line feed, cursor position, erase display, show/hide cursor and the bold SGR parameters.
//
// The api of this function is paniky by nature, it should only be used for tests.
func EmulateTerminal(ansiText string, size terminal.Size) Screen {
	a := &ansiState{
		cursorRow:    1,
		cursorColumn: 1,
		size:         size,
		asRunes:      []rune(ansiText),
	}
	a.clear()
	for !a.EoF() {
		c := a.next()
		switch c {
		case '\033':
			check.Checkf(a.next() == '[', "only CSI escapes are supported, at %d", a.head)
			a.handleControl()
		case '\r':
			a.cursorColumn = 1
		case '\n':
			a.lineFeed()
		default:
			a.write(c)
		}
	}
	return Screen{Rows: a.buffer, Bold: a.bold}
}

type ansiState struct {
	cursorRow, cursorColumn int
	boldOn                  bool

	// buffer is the in memory representation of the terminal, each entry of the slice is a row.
	buffer []string
	bold   []string
	size   terminal.Size

	asRunes []rune
	head    int
}

func (a *ansiState) EoF() bool { return a.head >= len(a.asRunes) }
func (a *ansiState) next() rune {
	check.Checkf(!a.EoF(), "unexpected end of ansi text %q", string(a.asRunes))
	r := a.asRunes[a.head]
	a.head++
	return r
}

func (a *ansiState) clear() {
	a.buffer = blank(a.size)
	a.bold = blank(a.size)
}

func blank(size terminal.Size) []string {
	output := make([]string, size.Height)
	for i := range output {
		output[i] = strings.Repeat(" ", size.Width)
	}
	return output
}

func (a *ansiState) write(c rune) {
	if a.cursorColumn > a.size.Width {
		a.cursorColumn = 1
		a.lineFeed()
	}
	set(a.buffer, a.cursorRow, a.cursorColumn, c)
	if a.boldOn {
		set(a.bold, a.cursorRow, a.cursorColumn, c)
	} else {
		set(a.bold, a.cursorRow, a.cursorColumn, ' ')
	}
	a.cursorColumn++
}

func set(buffer []string, row, column int, c rune) {
	y := []rune(buffer[row-1])
	y[column-1] = c
	buffer[row-1] = string(y)
}

func (a *ansiState) lineFeed() {
	if a.cursorRow < a.size.Height {
		a.cursorRow++
		return
	}
	a.buffer = scroll(a.buffer, a.size)
	a.bold = scroll(a.bold, a.size)
}

func scroll(buffer []string, size terminal.Size) []string {
	return append(buffer[1:], strings.Repeat(" ", size.Width))
}

// handleControl is called after the CSI, it describes the supported ansi commands of the emulator.
func (a *ansiState) handleControl() {
	var params strings.Builder
	for {
		c := a.next()
		if (c >= '0' && c <= '9') || c == ';' || c == '?' {
			params.WriteRune(c)
			continue
		}
		a.command(params.String(), c)
		return
	}
}

func (a *ansiState) command(params string, final rune) {
	switch final {
	case 'm':
		for p := range strings.SplitSeq(params, ";") {
			switch p {
			case "", "0", "22":
				a.boldOn = false
			case "1":
				a.boldOn = true
			}
		}
	case 'H':
		row, column, _ := strings.Cut(params, ";")
		a.cursorRow = orOne(row)
		a.cursorColumn = orOne(column)
	case 'J':
		check.Checkf(params == strconv.Itoa(int(ansi.CursorScreen)), "unsupported erase %q", params)
		a.clear()
	case 'l', 'h':
		check.Checkf(params == "?25", "unsupported mode %q", params)
	default:
		panic(fmt.Sprintf("unsupported ansi command %q %q", params, final))
	}
}

func orOne(s string) int {
	if s == "" {
		return 1
	}
	return check.Must(strconv.Atoi(s))
}
