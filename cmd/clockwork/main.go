// Package main is the clockwork command.
package main

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/alexander-akhmetov/clockwork/internal/tui"
)

// Set with -ldflags "-X main.version=...". A release build skips build info.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// buildInfo is what `clockwork --version` reports.
type buildInfo struct {
	version string
	commit  string
	date    string
}

func main() {
	b := buildInfo{version: version, commit: commit, date: date}
	if b.version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			b = b.fill(info)
		}
	}
	tui.SetVersionInfo(b.version, b.commit, b.date)
	if err := tui.Execute(); err != nil {
		os.Exit(1)
	}
}

// fill takes the module version and the VCS stamp from the Go build info.
// Values it cannot find keep what b already holds.
func (b buildInfo) fill(info *debug.BuildInfo) buildInfo {
	if info == nil {
		return b
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.version = strings.TrimPrefix(v, "v")
	}

	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			if s.Value != "" {
				b.date = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) >= 7 {
		b.commit = revision[:7]
		if dirty {
			b.commit += "-dirty"
		}
	}
	return b
}
