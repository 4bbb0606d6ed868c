// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// tcellscreen is the alternative to the plain ansi [terminal.Terminal], it lets tcell own the terminal
// (terminfo lookups, key decoding, raw mode) and keeps a small curses like window on top of it.
package tcellscreen

import (
	"io"
	"log/slog"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/shocklang/shocked/keys"
	"github.com/shocklang/shocked/utils/check"
	"github.com/shocklang/shocked/utils/errors"
)

type cell struct {
	r    rune
	bold bool
}

// Screen is a scrolling window of text over a [tcell.Screen]. Like a curses window nothing printed is visible
// until [Screen.Refresh], which [Screen.ReadKey] does before waiting for a key.
type Screen struct {
	screen tcell.Screen

	rows          [][]cell
	width, height int
	x, y          int
	bold          bool

	started  bool
	finiOnce *sync.Once
}

// New creates a screen for the real terminal, [Screen.Start] must be called before use.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tcell screen")
	}
	return NewFromScreen(s), nil
}

// NewFromScreen wraps an existing tcell screen, tests use this with [tcell.NewSimulationScreen].
func NewFromScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:   s,
		finiOnce: &sync.Once{},
	}
}

// Start initialises tcell, which puts the terminal into raw mode and clears it. The returned function
// finalises tcell restoring the terminal, it's safe to call more than once.
func (s *Screen) Start() (func(), error) {
	if err := s.screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialise tcell screen")
	}
	s.started = true
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.Clear()
	s.resize()
	slog.Debug("tcell screen started", "width", s.width, "height", s.height)
	return s.Close, nil
}

// Close finalises tcell, only the first call has any effect.
func (s *Screen) Close() {
	s.finiOnce.Do(func() {
		if s.started {
			s.screen.Fini()
			slog.Debug("tcell screen finalised")
		}
	})
}

// resize reshapes the window to the current screen size, when it shrinks rows are dropped from the top only
// as far as needed to keep the cursor row visible.
func (s *Screen) resize() {
	s.width, s.height = s.screen.Size()
	rows := make([][]cell, s.height)
	offset := max(s.y-(s.height-1), 0)
	for i := range rows {
		rows[i] = make([]cell, s.width)
		if i+offset < len(s.rows) {
			copy(rows[i], s.rows[i+offset])
		}
	}
	s.rows = rows
	s.y = max(min(s.y-offset, s.height-1), 0)
	s.x = min(s.x, s.width)
}

func (s *Screen) Print(str string) error {
	if !s.started {
		return errors.New("tcell screen not started")
	}
	for _, r := range str {
		switch r {
		case '\n':
			s.newline()
		case '\r':
			s.x = 0
		default:
			s.put(r)
		}
	}
	return nil
}

func (s *Screen) put(r rune) {
	if s.width == 0 || s.height == 0 {
		return
	}
	if s.x >= s.width {
		s.newline()
	}
	check.Checkf(s.y < len(s.rows), "cursor row %d escaped the window of height %d", s.y, len(s.rows))
	s.rows[s.y][s.x] = cell{r: r, bold: s.bold}
	s.x++
}

// newline moves to the start of the next row, scrolling the window up when already on the last row.
func (s *Screen) newline() {
	s.x = 0
	if s.y < s.height-1 {
		s.y++
		return
	}
	if s.height == 0 {
		return
	}
	copy(s.rows, s.rows[1:])
	s.rows[s.height-1] = make([]cell, s.width)
}

func (s *Screen) SetBold(on bool) error {
	s.bold = on
	return nil
}

// Refresh paints the window onto the tcell screen and shows it.
func (s *Screen) Refresh() error {
	if !s.started {
		return errors.New("tcell screen not started")
	}
	normal := tcell.StyleDefault
	bold := tcell.StyleDefault.Bold(true)
	for y, row := range s.rows {
		for x, c := range row {
			style := normal
			if c.bold {
				style = bold
			}
			r := c.r
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.ShowCursor(min(s.x, max(s.width-1, 0)), s.y)
	s.screen.Show()
	return nil
}

// ReadKey refreshes the screen and then blocks until a key is pressed. Resizes are handled while waiting.
func (s *Screen) ReadKey() (keys.Key, error) {
	if err := s.Refresh(); err != nil {
		return keys.Key{}, err
	}
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return keys.Key{}, errors.Wrap(io.EOF, "tcell screen finalised")
		case *tcell.EventKey:
			return toKey(ev), nil
		case *tcell.EventResize:
			s.resize()
			if err := s.Refresh(); err != nil {
				return keys.Key{}, err
			}
			s.screen.Sync()
		default:
			slog.Debug("ignoring tcell event", "event", ev)
		}
	}
}

var named = map[tcell.Key]keys.Code{
	tcell.KeyEnter:     keys.Enter,
	tcell.KeyLF:        keys.Enter,
	tcell.KeyTab:       keys.Tab,
	tcell.KeyBacktab:   keys.Backtab,
	tcell.KeyBackspace: keys.Backspace,
	tcell.KeyDEL:       keys.Backspace,
	tcell.KeyEscape:    keys.Escape,
	tcell.KeyDelete:    keys.Delete,
	tcell.KeyInsert:    keys.Insert,
	tcell.KeyUp:        keys.Up,
	tcell.KeyDown:      keys.Down,
	tcell.KeyLeft:      keys.Left,
	tcell.KeyRight:     keys.Right,
	tcell.KeyHome:      keys.Home,
	tcell.KeyEnd:       keys.End,
	tcell.KeyPgUp:      keys.PageUp,
	tcell.KeyPgDn:      keys.PageDown,
}

func toKey(ev *tcell.EventKey) keys.Key {
	k := ev.Key()
	if k == tcell.KeyRune {
		return keys.Of(ev.Rune())
	}
	if code, ok := named[k]; ok {
		return keys.Key{Code: code}
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return keys.Key{Code: keys.F1 + keys.Code(k-tcell.KeyF1)}
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		// KeyCtrlA is 'A' and so on.
		return keys.Key{Code: keys.Ctrl, Rune: unicode.ToLower(rune(k))}
	case k <= tcell.KeyUS:
		return keys.Key{Code: keys.Ctrl, Rune: unicode.ToLower(rune('@' + k))}
	}
	return keys.Key{Code: keys.Unknown}
}
