// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shocklang/shocked/cmd/subcommands/keyecho"
	"github.com/shocklang/shocked/cmd/subcommands/version"
	"github.com/shocklang/shocked/terminal/ansi"
	"github.com/shocklang/shocked/utils/application"
	"github.com/shocklang/shocked/utils/errors"
	"github.com/shocklang/shocked/utils/exit"
)

// Set at link time, e.g. -ldflags "-X main.COMMIT=$(git rev-parse HEAD)".
var (
	COMMIT     string
	GO_VERSION string
	BRANCH     string
	TIMESTAMP  string
	TAG        string
)

var programName = ansi.Green("shocked")

const versionString = "version"

type subcommand struct {
	subcommandName string
	description    string
}

var commandsUsage = []subcommand{
	{
		subcommandName: ansi.Red(versionString),
		description:    programName + " " + ansi.Red(versionString) + " will print the version and build details then exit.",
	},
}

var mainDescription = programName + " can be run with no arguments to open the interactive terminal," +
	" every key pressed is echoed back. To exit press " + ansi.Bold(keyecho.Quit.String()) + "."

func main() {
	info := application.MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case versionString:
			v := version.GetFlags(info)
			FlagParseError(v.Parse(os.Args[2:]))
			version.RunVersion(v, os.Stdout)
			exit.Success()
		default:
			// fallthrough
		}
	}
	k := keyecho.GetFlags(info)
	k.Usage = func() {
		fmt.Fprint(k.Output(), "  "+mainDescription+"\n\n")
		for _, cmd := range commandsUsage {
			fmt.Fprint(k.Output(), "  "+cmd.subcommandName+"\n")
			fmt.Fprint(k.Output(), "      "+cmd.description+"\n")
		}
		fmt.Fprintf(k.Output(), "call any of the above subcommands with --help for extra details on those commands.\n")
		fmt.Fprint(k.Output(), "\n"+programName+" arguments:\n")
		k.PrintDefaults()
	}
	FlagParseError(k.Parse(os.Args[1:]))
	exit.OnErrorMsg(keyecho.RunKeyEcho(k), "shocked stopped")
	exit.Success()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
