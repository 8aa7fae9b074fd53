package version

import (
	"runtime/debug"
	"strings"
	"testing"

	kit "interventions/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &readBuild, func() (*debug.BuildInfo, bool) { return nil, false })

	b := Info()
	if b.Service != Service || b.Version != "dev" || b.Commit != "none" || b.Date != "unknown" {
		t.Fatalf("unexpected defaults %+v", b)
	}
	if !strings.HasPrefix(b.Go, "go") {
		t.Fatalf("go version = %q", b.Go)
	}
	if got := b.String(); got != "interventions dev (none, unknown)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestInfo_FromVCSStamp(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &readBuild, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "9f1c2e"},
				{Key: "vcs.time", Value: "2026-10-18T21:04:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	})

	b := Info()
	if b.Version != "v0.3.1" || b.Commit != "9f1c2e" || b.Date != "2026-10-18T21:04:00Z" || !b.Modified {
		t.Fatalf("stamp ignored: %+v", b)
	}
	if got := b.String(); got != "interventions v0.3.1 (9f1c2e+dirty, 2026-10-18T21:04:00Z)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestInfo_LdflagsWin(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &commit, "abcd")
	kit.Swap(t, &readBuild, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "9f1c2e"}},
		}, true
	})

	if b := Info(); b.Commit != "abcd" || b.Version != "dev" {
		t.Fatalf("ldflags lost: %+v", b)
	}
}
