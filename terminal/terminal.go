// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/shocklang/shocked/keys"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/errors"

	"golang.org/x/term"
)

// Size represents the size of a terminal, the units are in terms of numbers of characters.
type Size struct {
	Height int // Height can also be thought of as "y" or "number of rows"
	Width  int // Width can also be thought of as "x" or "number of columns"
}

func (s Size) String() string {
	return "W: " + strconv.Itoa(s.Width) + " H: " + strconv.Itoa(s.Height)
}

// Terminal is the datatype which models the terminal, it's zero value is not usable and instead should be
// constructed via the functions provided:
//   - [NewTerminal]
//   - [NewTestTerminal]
//
// Output is buffered, nothing reaches the real terminal until [Terminal.Refresh] is called, which
// [Terminal.ReadKey] always does before blocking.
type Terminal struct {
	size Size

	stdout *bufio.Writer
	keys   *keys.Decoder

	stdinFd              int
	terminalSizeCallBack func() (Size, error)

	isTestTerminal bool

	restore     func()
	restoreOnce *sync.Once
}

// NewTerminal creates a new terminal bound to the process stdin and stdout, it immediately verifies that it
// can operate for [Terminal.StartRaw] and reads the terminal size.
func NewTerminal() (*Terminal, error) {
	stdinIsTerm := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutIsTerm := term.IsTerminal(int(os.Stdout.Fd()))
	if !(stdinIsTerm && stdoutIsTerm) {
		return nil, errors.Errorf("Not an expected terminal environment, stdin and stdout must both be a terminal")
	}
	size, err := getCurrentTerminalSize(os.Stdout)
	if err != nil {
		return nil, err
	}
	t := &Terminal{
		size:    size,
		stdout:  bufio.NewWriter(os.Stdout),
		keys:    keys.NewDecoder(os.Stdin),
		stdinFd: int(os.Stdin.Fd()),
		terminalSizeCallBack: func() (Size, error) {
			return getCurrentTerminalSize(os.Stdout)
		},
		isTestTerminal: false,
		restore:        func() {},
		restoreOnce:    &sync.Once{},
	}
	return t, t.supportsRaw(os.Stdin)
}

// NewTestTerminal builds a terminal in which no real file interactions occur, instead all normal operations
// to stdout and stdin are performed on the two interfaces. When the terminal is instructed to compute a new
// size with [Terminal.UpdateSize] it instead calls the [terminalSizeCallBack]. This is helpful for test
// environments so that the output of the terminal can be inspected and asserted on.
func NewTestTerminal(stdinReader io.Reader, stdoutWriter io.Writer, terminalSizeCallBack func() Size) (*Terminal, error) {
	return &Terminal{
		size:                 terminalSizeCallBack(),
		stdout:               bufio.NewWriter(stdoutWriter),
		keys:                 keys.NewDecoder(stdinReader),
		terminalSizeCallBack: func() (Size, error) { return terminalSizeCallBack(), nil },
		isTestTerminal:       true,
		restore:              func() {},
		restoreOnce:          &sync.Once{},
	}, nil
}

// GetSize gets the cached size of the terminal, as in it returns the value most recently attained from
// [Terminal.UpdateSize], or if that has not been called the size of the terminal as initialised.
func (t *Terminal) GetSize() Size {
	return t.size
}

// UpdateSize the terminals stored size. Retrieve the result with [Terminal.GetSize].
func (t *Terminal) UpdateSize() error {
	var err error
	t.size, err = t.terminalSizeCallBack()
	return err
}

// StartRaw puts the terminal into raw mode: key presses are delivered immediately, nothing is echoed and
// ctrl+c is just another key. The screen is then cleared with the cursor moved home.
//
// The returned function puts the terminal back the way it was found, it's safe to call more than once and
// should be deferred so that a panic doesn't leave the users shell in raw mode:
//
//	term, _ := terminal.NewTerminal()
//	restore, _ := term.StartRaw()
//	defer restore()
func (t *Terminal) StartRaw() (func(), error) {
	if !t.isTestTerminal {
		oldState, err := term.MakeRaw(t.stdinFd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to set terminal to raw mode")
		}
		t.restore = func() { _ = term.Restore(t.stdinFd, oldState) }
	}
	slog.Debug("terminal in raw mode", "size", t.size.String(), "test", t.isTestTerminal)
	if err := t.ClearScreen(UpdateSizeAndMoveHome); err != nil {
		t.Close()
		return nil, err
	}
	if err := t.Refresh(); err != nil {
		t.Close()
		return nil, err
	}
	return t.Close, nil
}

// Close flushes anything still buffered and restores the terminal mode, only the first call has any effect.
func (t *Terminal) Close() {
	t.restoreOnce.Do(func() {
		_ = t.Refresh()
		t.restore()
		slog.Debug("terminal restored")
	})
}

type ClearBehaviour int

const (
	UpdateSize            ClearBehaviour = 1 // Ensures the size is updated before the clear is called.
	MoveHome              ClearBehaviour = 2 // Move home will move the cursor back to the home position after the clear completes.
	UpdateSizeAndMoveHome ClearBehaviour = 3 // Does both.
)

// ClearScreen will "clear" the current terminal, by first scrolling the existing content up and out of view
// and then erasing the display. The parameter indicates what should happen after the terminal is cleared.
func (t *Terminal) ClearScreen(behaviour ClearBehaviour) error {
	if behaviour == UpdateSize || behaviour == UpdateSizeAndMoveHome {
		if err := t.UpdateSize(); err != nil {
			return errors.Wrap(err, "while ClearScreen")
		}
	}
	err := t.Print(strings.Repeat("\n", t.size.Height))
	err = errors.Join(err, t.Print(ansi.Clear))
	if behaviour == MoveHome || behaviour == UpdateSizeAndMoveHome {
		err = errors.Join(err, t.Print(ansi.Home))
	}
	return errors.Wrap(err, "while ClearScreen")
}

// Print will write the string [s] to the output buffer. Newlines are written as "\r\n" since raw mode turns
// off the terminal's own output processing.
func (t *Terminal) Print(s string) error {
	_, err := t.Write([]byte(strings.ReplaceAll(s, "\n", "\r\n")))
	return err
}

// Write will write the passed bytes verbatim to the output buffer, returning the standard number of bytes
// written and error.
func (t *Terminal) Write(b []byte) (int, error) {
	return t.stdout.Write(b)
}

// SetBold toggles the bold attribute for everything printed after it.
func (t *Terminal) SetBold(on bool) error {
	if on {
		return t.Print(ansi.BoldOn)
	}
	return t.Print(ansi.BoldOff)
}

// Refresh flushes all buffered output to the terminal.
func (t *Terminal) Refresh() error {
	return errors.Wrap(t.stdout.Flush(), "failed to refresh terminal")
}

// ReadKey refreshes the terminal and then blocks until the user presses a key, there is no timeout.
func (t *Terminal) ReadKey() (keys.Key, error) {
	if err := t.Refresh(); err != nil {
		return keys.Key{}, err
	}
	k, err := t.keys.Next()
	return k, errors.Wrap(err, "failed to read key")
}

// getCurrentTerminalSize gets the current terminal size or error if the program doesn't have a terminal
// attached (e.g. go tests).
func getCurrentTerminalSize(file *os.File) (Size, error) {
	w, h, err := term.GetSize(int(file.Fd()))
	return Size{Height: h, Width: w}, errors.Wrap(err, "failed to get terminal size")
}

func (t *Terminal) supportsRaw(file *os.File) error {
	inFd := int(file.Fd())
	oldState, makeRawErr := term.MakeRaw(inFd)
	var restoreErr error
	if oldState != nil {
		restoreErr = term.Restore(inFd, oldState)
	}
	return errors.Wrap(errors.Join(makeRawErr, restoreErr), "failed to set terminal to raw mode")
}
