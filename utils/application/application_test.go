// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application_test

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shocklang/shocked/utils/application"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestBanner(t *testing.T) {
	t.Parallel()
	assert.Equal(t, application.Banner(), "shocked version 0.1.0\n")
	assert.Equal(t, application.Version(), "0.1.0")
}

func TestMakeBuildInfo(t *testing.T) {
	t.Parallel()
	assert.Assert(t, application.MakeBuildInfo("", "", "", "", "") == nil, "local builds have no info")
	info := application.MakeBuildInfo("abc123", "go1.25.0", "main", "2026-10-18", "v0.1.0")
	assert.Equal(t, info.Commit(), "abc123")
	assert.Equal(t, info.GoVersion(), "go1.25.0")
	assert.Equal(t, info.Branch(), "main")
	assert.Equal(t, info.BuildTimestamp(), "2026-10-18")
	assert.Equal(t, info.Tag(), "v0.1.0")
}

func TestLogHandler(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := slog.New(application.NewLogHandler(buf, false))
	logger.Debug("got keyboard input", "received", "[0x71]")
	out := buf.String()
	assert.Check(t, is.Contains(out, "DBG"))
	assert.Check(t, is.Contains(out, "got keyboard input"))
	assert.Check(t, is.Contains(out, "received=[0x71]"))
	assert.Check(t, !strings.Contains(out, "\033["), "no colour when not writing to a terminal")

	coloured := &bytes.Buffer{}
	slog.New(application.NewLogHandler(coloured, true)).Info("hello")
	assert.Check(t, is.Contains(coloured.String(), "\033["))
}

// Not parallel, this swaps the default logger.
func TestInitLoggingToFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	f := flag.NewFlagSet("", flag.ContinueOnError)
	sf := application.NewSharedFlags(f)
	path := filepath.Join(t.TempDir(), "shocked.log")
	assert.NilError(t, f.Parse([]string{"-log-file", path}))

	closeLog := sf.InitLogging(application.MakeBuildInfo("abc123", "", "", "", ""))
	slog.Debug("echoing key", "key", "q")
	closeLog()

	written, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(written), "Logging started"))
	assert.Check(t, is.Contains(string(written), "echoing key"))
	assert.Check(t, is.Contains(string(written), "COMMIT=abc123"))
}
