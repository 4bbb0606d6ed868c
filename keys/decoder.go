// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package keys

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shocklang/shocked/utils/bytes"
)

// Decoder turns the raw bytes of a terminal in raw mode into [Key]s, decoding the escape sequences which
// terminals send for arrows, function keys and friends.
//
// The underlying reader is treated as a terminal: every Read returns whatever the user has typed so far, and
// the bytes of a single key press arrive together. A lone escape byte at the end of a read is therefore the
// escape key rather than the start of a sequence.
type Decoder struct {
	r      io.Reader
	buffer []byte

	// pending is the start of a utf8 rune which was split across two reads.
	pending []byte
	queue   []Key
	err     error
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:      r,
		buffer: make([]byte, 64),
	}
}

// Next blocks until a key is available. Once the reader has errored every key which was already read is
// still returned, followed by the error.
func (d *Decoder) Next() (Key, error) {
	for len(d.queue) == 0 {
		if d.err != nil {
			return Key{}, d.err
		}
		d.fill()
	}
	k := d.queue[0]
	d.queue = d.queue[1:]
	return k, nil
}

func (d *Decoder) fill() {
	n, err := d.r.Read(d.buffer)
	if n > 0 {
		chunk := append(d.pending, d.buffer[:n]...)
		slog.Debug("got keyboard input", "received", bytes.HexPrint(chunk))
		d.queue, d.pending = decode(chunk)
		bytes.Clear(d.buffer, n)
	}
	if err != nil {
		d.err = err
		if len(d.pending) > 0 {
			d.queue = append(d.queue, Of(utf8.RuneError))
			d.pending = nil
		}
	}
}

// decode consumes a whole chunk, returning the keys found and any trailing bytes of an incomplete rune.
func decode(chunk []byte) ([]Key, []byte) {
	s := &scanner{chunk: chunk}
	var ret []Key
	for !s.done() {
		b := s.peek()
		switch {
		case b == 0x1b:
			s.consume()
			ret = append(ret, s.escape())
		case b == '\r' || b == '\n':
			s.consume()
			ret = append(ret, Key{Code: Enter})
		case b == '\t':
			s.consume()
			ret = append(ret, Key{Code: Tab})
		case b == 0x7f || b == 0x08:
			s.consume()
			ret = append(ret, Key{Code: Backspace})
		case b < 0x20:
			s.consume()
			ret = append(ret, Key{Code: Ctrl, Rune: unicode.ToLower(rune('@' + b))})
		case b < utf8.RuneSelf:
			s.consume()
			ret = append(ret, Of(rune(b)))
		default:
			rest := s.rest()
			if !utf8.FullRune(rest) {
				return ret, append([]byte(nil), rest...)
			}
			r, size := utf8.DecodeRune(rest)
			s.head += size
			ret = append(ret, Of(r))
		}
	}
	return ret, nil
}

// scanner walks a single chunk, it never blocks and never reads past the chunk it was given.
type scanner struct {
	chunk []byte
	head  int
}

func (s *scanner) done() bool   { return s.head >= len(s.chunk) }
func (s *scanner) peek() byte   { return s.chunk[s.head] }
func (s *scanner) consume()     { s.head++ }
func (s *scanner) rest() []byte { return s.chunk[s.head:] }
func (s *scanner) isNext(b byte) bool {
	return !s.done() && s.peek() == b
}

// escape is called with the escape byte already consumed.
func (s *scanner) escape() Key {
	switch {
	case s.isNext('['):
		s.consume()
		if s.isNext('[') {
			s.consume()
			return s.linuxFunctionKey()
		}
		return s.csi()
	case s.isNext('O'):
		s.consume()
		return s.ss3()
	default:
		return Key{Code: Escape}
	}
}

// csi decodes the remainder of a "ESC [" sequence, parameter bytes followed by one final byte.
func (s *scanner) csi() Key {
	var params strings.Builder
	for !s.done() && s.peek() >= 0x30 && s.peek() <= 0x3f {
		params.WriteByte(s.peek())
		s.consume()
	}
	if s.done() {
		return Key{Code: Unknown}
	}
	final := s.peek()
	s.consume()
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F', 'P', 'Q', 'R', 'S':
		// Any parameters here are modifiers (e.g. "1;5A" is ctrl+up) which are dropped.
		return Key{Code: cursorFinals[final]}
	case 'Z':
		return Key{Code: Backtab}
	case '~':
		first, _, _ := strings.Cut(params.String(), ";")
		n, err := strconv.Atoi(first)
		if err != nil {
			return Key{Code: Unknown}
		}
		if code, ok := tildeCodes[n]; ok {
			return Key{Code: code}
		}
	}
	return Key{Code: Unknown}
}

// linuxFunctionKey decodes the remainder of "ESC [ [", the linux console sends F1-F5 as "ESC [ [ A" to "E".
func (s *scanner) linuxFunctionKey() Key {
	if s.done() {
		return Key{Code: Unknown}
	}
	final := s.peek()
	s.consume()
	if final >= 'A' && final <= 'E' {
		return Key{Code: F1 + Code(final-'A')}
	}
	return Key{Code: Unknown}
}

// ss3 decodes the remainder of a "ESC O" sequence, sent by terminals in application cursor mode and for F1-F4.
func (s *scanner) ss3() Key {
	if s.done() {
		return Key{Code: Unknown}
	}
	final := s.peek()
	s.consume()
	if code, ok := cursorFinals[final]; ok {
		return Key{Code: code}
	}
	return Key{Code: Unknown}
}

var cursorFinals = map[byte]Code{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'H': Home,
	'F': End,
	'P': F1,
	'Q': F2,
	'R': F3,
	'S': F4,
}

var tildeCodes = map[int]Code{
	1:  Home,
	2:  Insert,
	3:  Delete,
	4:  End,
	5:  PageUp,
	6:  PageDown,
	7:  Home,
	8:  End,
	11: F1,
	12: F2,
	13: F3,
	14: F4,
	15: F5,
	17: F6,
	18: F7,
	19: F8,
	20: F9,
	21: F10,
	23: F11,
	24: F12,
}
