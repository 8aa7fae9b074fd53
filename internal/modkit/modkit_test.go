package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"interventions/internal/modkit/httpkit"
	"interventions/internal/modkit/module"
	"interventions/internal/platform/logger"
	phttp "interventions/internal/platform/net/http"
	kit "interventions/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type stubModule struct {
	built Built
	ports any
	seen  *[]string
}

func (m stubModule) Name() string { return m.built.Name }

func (m stubModule) Ports() any { return m.ports }

func (m stubModule) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		httpkit.Get(rr, "/ping", func(*http.Request) (any, error) {
			// ports of every module are visible by the time a request runs
			*m.seen = module.Names()
			return m.built.Name, nil
		})
	})
}

func TestBuild_Options(t *testing.T) {
	b := Build("scheduler", "/scheduler")
	if b.Name != "scheduler" || b.Prefix != "/scheduler" {
		t.Fatalf("defaults %+v", b)
	}
	b = Build("scheduler", "/scheduler", WithName("dispatch"), WithPrefix("/dispatch"))
	if b.Name != "dispatch" || b.Prefix != "/dispatch" {
		t.Fatalf("overrides %+v", b)
	}
}

func serve(mux http.Handler, path string) int {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr.Code
}

func TestMountAll(t *testing.T) {
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	var seen []string
	mux := chi.NewRouter()
	MountAll(phttp.AdaptChi(mux),
		stubModule{built: Build("meta", "/meta"), seen: &seen},
		stubModule{built: Build("scheduler", " scheduler/ "), ports: 1, seen: &seen},
		stubModule{built: Build("root", ""), seen: &seen},
	)

	for _, path := range []string{"/meta/ping", "/scheduler/ping", "/ping"} {
		if code := serve(mux, path); code != http.StatusOK {
			t.Fatalf("%s status = %d", path, code)
		}
	}
	if len(seen) != 3 || seen[0] != "meta" || seen[1] != "root" || seen[2] != "scheduler" {
		t.Fatalf("registered = %v", seen)
	}
}

func TestBuilt_MountRejectsBlankNamedPrefix(t *testing.T) {
	kit.MustPanic(t, func() {
		Build("x", " / / ").Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {})
	})
}

func TestDeps_Logger(t *testing.T) {
	if (Deps{}).Logger("scheduler") == nil {
		t.Fatalf("fallback logger should not be nil")
	}
	l := logger.Named("custom")
	if (Deps{Log: l}).Logger("scheduler") != l {
		t.Fatalf("explicit logger should win")
	}
}
