// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/application"
)

type Config struct {
	*application.BuildInfo
	*flag.FlagSet
}

func GetFlags(info *application.BuildInfo) *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		BuildInfo: info,
		FlagSet:   f,
	}
	return ret
}

func RunVersion(c *Config, w io.Writer) {
	versionColour := ansi.Cyan
	detailsColour := ansi.Gray
	header := "shocked version %s\n"
	if c.BuildInfo == nil {
		fmt.Fprintf(w, header, versionColour(application.Version()+" (local build)"))
		return
	}
	var b strings.Builder
	const details = "Details - Tag:%s Commit:%s Branch:%q GoVersion:%q BuildTimestamp:%s\n"
	fmt.Fprintf(&b, header, versionColour(application.Version()))
	b.WriteString(detailsColour(
		fmt.Sprintf(details,
			c.Tag(),
			c.Commit(),
			c.Branch(),
			c.GoVersion(),
			c.BuildTimestamp(),
		),
	))
	fmt.Fprint(w, b.String())
}
