// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version_test

import (
	"strings"
	"testing"

	"github.com/shocklang/shocked/cmd/subcommands/version"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/application"
	"gotest.tools/v3/assert"
)

func TestLocalBuild(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	version.RunVersion(version.GetFlags(nil), &b)
	assert.Equal(t, b.String(), "shocked version "+ansi.Cyan("0.1.0 (local build)")+"\n")
}

func TestReleaseBuild(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	info := application.MakeBuildInfo("abc123", "go1.25.0", "main", "2026-10-18T10:00:00Z", "v0.1.0")
	version.RunVersion(version.GetFlags(info), &b)
	assert.Equal(t, b.String(), "shocked version "+ansi.Cyan("0.1.0")+"\n"+ansi.Gray(
		`Details - Tag:v0.1.0 Commit:abc123 Branch:"main" GoVersion:"go1.25.0" BuildTimestamp:2026-10-18T10:00:00Z`+"\n",
	))
}
