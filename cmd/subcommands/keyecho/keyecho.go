// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package keyecho

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/shocklang/shocked/echo"
	"github.com/shocklang/shocked/keys"
	"github.com/shocklang/shocked/terminal"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/terminal/tcellscreen"
	"github.com/shocklang/shocked/utils/application"
	"github.com/shocklang/shocked/utils/check"
	"github.com/shocklang/shocked/utils/errors"
)

// Quit is the key which ends the program.
var Quit = keys.Of('q')

const (
	termBackend  = "term"
	tcellBackend = "tcell"
)

var backends = []string{termBackend, tcellBackend}

type Config struct {
	*application.BuildInfo
	*application.SharedFlags
	*flag.FlagSet

	backend *string
}

func GetFlags(info *application.BuildInfo) *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		BuildInfo:   info,
		SharedFlags: application.NewSharedFlags(f),
		FlagSet:     f,

		backend: f.String("backend", termBackend,
			"how the terminal is driven, one of: "+strings.Join(backends, ", ")+".\n"+
				ansi.Bold(termBackend)+" uses plain ansi escapes, "+ansi.Bold(tcellBackend)+" lets tcell own the terminal"),
	}
	return ret
}

// RunKeyEcho owns the terminal until [Quit] is pressed. The terminal is always restored before this returns,
// including on a panic.
func RunKeyEcho(c *Config) error {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := c.InitLogging(c.BuildInfo)
	defer closeLogFile()
	closeCPUProfile := c.InitCPUProfiling()
	defer closeCPUProfile()
	closeMemProfile := c.InitMemProfile()
	defer closeMemProfile()

	screen, start, err := makeScreen(*c.backend)
	if err != nil {
		return err
	}
	summary, err := run(screen, start)
	slog.Debug("finished", "keys", summary.Keys, "err", err)
	return err
}

// starter puts a screen into raw mode returning the function which undoes it.
type starter func() (func(), error)

func run(screen echo.Screen, start starter) (echo.Summary, error) {
	restore, err := start()
	if err != nil {
		return echo.Summary{}, err
	}
	defer restore()
	return echo.Run(screen, application.Banner(), Quit)
}

func makeScreen(backend string) (echo.Screen, starter, error) {
	switch backend {
	case termBackend:
		t, err := terminal.NewTerminal()
		if err != nil {
			return nil, nil, err
		}
		return t, t.StartRaw, nil
	case tcellBackend:
		s, err := tcellscreen.New()
		if err != nil {
			return nil, nil, err
		}
		return s, s.Start, nil
	default:
		return nil, nil, errors.Errorf("unknown backend %q, expected one of: %s", backend, strings.Join(backends, ", "))
	}
}
