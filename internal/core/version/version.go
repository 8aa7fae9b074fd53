// Package version reports build metadata. -ldflags values win, the vcs stamp
// the go tool embeds fills whatever was left unset
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Service is the name meta endpoints and the cli report
const Service = "interventions"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service  string `json:"service"`
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Modified bool   `json:"modified,omitempty"`
	Go       string `json:"go"`
}

// go build -ldflags "-X interventions/internal/core/version.version=v0.1.0
// -X interventions/internal/core/version.commit=abcd -X interventions/internal/core/version.date=2026-10-19"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuild = debug.ReadBuildInfo

// Info returns the build information
func Info() BuildInfo {
	b := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date, Go: runtime.Version()}
	bi, ok := readBuild()
	if !ok {
		return b
	}
	if b.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		b.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && b.Commit == "none":
			b.Commit = s.Value
		case s.Key == "vcs.time" && b.Date == "unknown":
			b.Date = s.Value
		case s.Key == "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// String renders "interventions dev (none, unknown)", with a "+dirty" commit when modified
func (b BuildInfo) String() string {
	c := b.Commit
	if b.Modified {
		c += "+dirty"
	}
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, c, b.Date)
}
