// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/shocklang/shocked/utils/check"
)

type BuildInfo struct {
	commit    string
	goVersion string
	branch    string
	timestamp string
	tag       string
}

//nolint:staticcheck
func MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG string) *BuildInfo {
	if COMMIT == "" && GO_VERSION == "" && BRANCH == "" && TIMESTAMP == "" && TAG == "" {
		return nil
	}
	return &BuildInfo{
		commit:    COMMIT,
		goVersion: GO_VERSION,
		branch:    BRANCH,
		timestamp: TIMESTAMP,
		tag:       TAG,
	}
}

func (b *BuildInfo) Commit() string         { return b.commit }
func (b *BuildInfo) GoVersion() string      { return b.goVersion }
func (b *BuildInfo) Branch() string         { return b.branch }
func (b *BuildInfo) BuildTimestamp() string { return b.timestamp }
func (b *BuildInfo) Tag() string            { return b.tag }

// SharedFlags are the flags every subcommand accepts.
type SharedFlags struct {
	logFile    *string
	cpuprofile *string
	memprofile *string
}

func NewSharedFlags(f *flag.FlagSet) *SharedFlags {
	return &SharedFlags{
		logFile: f.String("log-file", "",
			"write debug logs to this file, the terminal belongs to the program so logs are never printed to it.\n"+
				"Pointing this at another terminal (e.g. /dev/pts/3) gives coloured live logs"),
		cpuprofile: f.String("cpuprofile", "", "write cpu profile and trace to `file`"),
		memprofile: f.String("memprofile", "", "write memory profile to `file`"),
	}
}

func (sf *SharedFlags) InitLogging(info *BuildInfo) func() { return InitLogging(*sf.logFile, info) }
func (sf *SharedFlags) InitCPUProfiling() func()           { return InitCPUProfiling(*sf.cpuprofile) }
func (sf *SharedFlags) InitMemProfile() func()             { return InitMemProfile(*sf.memprofile) }

// InitLogging sets the default slog logger. With no file all logging is discarded, otherwise everything from
// debug up is written to the file, in colour only if the file is itself a terminal.
func InitLogging(file string, info *BuildInfo) (toDefer func()) {
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		check.NoErr(err, "could not open Log file")
		logger := slog.New(NewLogHandler(f, isatty.IsTerminal(f.Fd())))
		if info != nil {
			logger = logger.With(
				"COMMIT", info.commit,
				"BRANCH", info.branch,
				"GO_VERSION", info.goVersion,
				"BUILD_TIMESTAMP", info.timestamp,
				"TAG", info.tag,
			)
		}
		slog.SetDefault(logger)
		slog.Debug("Logging started", "file", file, "version", Version())
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

// NewLogHandler is the handler used for log files.
func NewLogHandler(w io.Writer, colour bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
		NoColor:    !colour,
	})
}

func InitCPUProfiling(cpuprofile string) (toDefer func()) {
	if cpuprofile == "" {
		return func() {}
	}
	cpuFile, err := os.Create(cpuprofile)
	check.NoErr(err, "could not create CPU profile")
	err = pprof.StartCPUProfile(cpuFile)
	check.NoErr(err, "could not start CPU profile")
	traceFile, err := os.Create("trace-" + cpuprofile)
	check.NoErr(err, "could not create Trace CPU profile")
	err = trace.Start(traceFile)
	check.NoErr(err, "could not start Trace CPU profile")

	slog.Debug("Started CPU & Trace profile", "path", cpuprofile)
	return func() {
		slog.Debug("Writing CPU profile", "path", cpuprofile)
		trace.Stop()
		pprof.StopCPUProfile()
		check.NoErr(cpuFile.Close(), "failed to close profile")
		check.NoErr(traceFile.Close(), "failed to close profile")
	}
}

func InitMemProfile(memprofile string) (toDefer func()) {
	if memprofile == "" {
		return func() {}
	}
	f, err := os.Create(memprofile)
	check.NoErr(err, "could not create memory profile")
	return func() {
		slog.Debug("Writing memory profile", "path", memprofile)
		runtime.GC() // get up-to-date statistics
		check.NoErr(pprof.WriteHeapProfile(f), "could not write memory profile")
		check.NoErr(f.Close(), "failed to close memory profile")
	}
}
