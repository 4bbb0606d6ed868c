// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// echo is the keyboard echo loop: every key pressed is printed back in bold until the quit key is pressed.
package echo

import (
	"log/slog"

	"github.com/shocklang/shocked/keys"
	"github.com/shocklang/shocked/utils/errors"
)

// Screen is the small slice of a curses like window which the loop needs. It's implemented by both
// [terminal.Terminal] and [tcellscreen.Screen].
type Screen interface {
	Print(s string) error
	SetBold(on bool) error
	// ReadKey blocks until a key is pressed.
	ReadKey() (keys.Key, error)
	// Refresh makes everything printed so far visible.
	Refresh() error
}

// Prefix precedes every echoed key.
const Prefix = "The key pressed is "

type Summary struct {
	// Keys is the number of keys echoed, including the quit key.
	Keys int
}

// Run prints the banner and then echoes keys until [quit] is read, the quit key is itself echoed before
// returning. Nothing is printed except in response to a key, so if the screen stops producing keys then Run
// returns the read error with only the banner and the keys so far printed.
func Run(screen Screen, banner string, quit keys.Key) (Summary, error) {
	s := Summary{}
	if err := screen.Print(banner); err != nil {
		return s, errors.Wrap(err, "failed to print banner")
	}
	if err := screen.Refresh(); err != nil {
		return s, err
	}
	for {
		k, err := screen.ReadKey()
		if err != nil {
			return s, errors.Wrapf(err, "echo loop stopped after %d keys", s.Keys)
		}
		slog.Debug("echoing key", "key", k.String(), "code", k.Code.String())
		if err := echo(screen, k); err != nil {
			return s, errors.Wrapf(err, "failed to echo %q", k.String())
		}
		s.Keys++
		if k == quit {
			slog.Debug("quit key pressed", "keys", s.Keys)
			return s, nil
		}
	}
}

func echo(screen Screen, k keys.Key) error {
	return errors.Join(
		screen.Print(Prefix),
		screen.SetBold(true),
		screen.Print(k.String()),
		screen.SetBold(false),
		screen.Print("\n"),
		screen.Refresh(),
	)
}
