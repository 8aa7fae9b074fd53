package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interventions/internal/core/roster"
	"interventions/internal/core/urgency"
	"interventions/internal/modkit/module"
	phttp "interventions/internal/platform/net/http"
	kit "interventions/internal/platform/testkit"
	ptime "interventions/internal/platform/time"
	"interventions/internal/services/scheduler/domain"
	"interventions/internal/services/scheduler/service"

	"github.com/go-chi/chi/v5"
)

var started = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T, dir *roster.Directory) stdhttp.Handler {
	t.Helper()
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)
	kit.Swap(t, &ptime.Now, func() time.Time { return started.Add(5 * time.Minute) })

	if dir != nil {
		c, err := urgency.DefaultCorpus()
		if err != nil {
			t.Fatal(err)
		}
		svc := service.New(c, dir)
		module.Register("scheduler", struct {
			Service domain.ServicePort
			Ready   domain.ReadyPort
		}{svc, svc})
	}
	module.Register("meta", nil)

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "interventions", StartedAt: started, Scheduler: "scheduler"})
	return mux
}

func get(t *testing.T, h stdhttp.Handler, path string, out any) int {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: decode %q: %v", path, rr.Body.String(), err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("%s: data %s: %v", path, env.Data, err)
		}
	}
	return rr.Code
}

func loadRoster(t *testing.T) *roster.Directory {
	t.Helper()
	d, err := roster.Load()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestHealthAndService(t *testing.T) {
	h := setup(t, loadRoster(t))

	var health HealthResponse
	if code := get(t, h, "/health", &health); code != stdhttp.StatusOK || !health.OK {
		t.Fatalf("health: %d %+v", code, health)
	}
	if health.Started != "2026-10-19T08:00:00Z" || health.Now != "2026-10-19T08:05:00Z" {
		t.Fatalf("health times: %+v", health)
	}

	var svc ServiceResponse
	get(t, h, "/service", &svc)
	if svc.Uptime != 300 || len(svc.Modules) != 2 || svc.Modules[1] != "scheduler" {
		t.Fatalf("service: %+v", svc)
	}
}

func TestReady(t *testing.T) {
	h := setup(t, loadRoster(t))
	var ready ReadyResponse
	if code := get(t, h, "/ready", &ready); code != stdhttp.StatusOK || ready.Status != "ok" {
		t.Fatalf("ready: %d %+v", code, ready)
	}
	if len(ready.Checks) != 1 || ready.Checks[0].Name != "scheduler" {
		t.Fatalf("checks: %+v", ready.Checks)
	}
}

func TestReady_FailsOnEmptyRoster(t *testing.T) {
	h := setup(t, roster.New())
	var ready ReadyResponse
	if code := get(t, h, "/ready", &ready); code != stdhttp.StatusServiceUnavailable || ready.Status != "fail" {
		t.Fatalf("ready: %d %+v", code, ready)
	}
	kit.MustContain(t, ready.Checks[0].Error, "no technicians")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/ready", nil))
	if rr.Header().Get("Retry-After") != "5" {
		t.Fatalf("Retry-After = %q", rr.Header().Get("Retry-After"))
	}
}

func TestModel(t *testing.T) {
	h := setup(t, loadRoster(t))
	var m ModelResponse
	if code := get(t, h, "/model", &m); code != stdhttp.StatusOK {
		t.Fatalf("model status = %d", code)
	}
	if m.Vocabulary != 40 || m.Examples != 8 || m.Technicians != 3 || m.Build.Service == "" {
		t.Fatalf("model: %+v", m)
	}
}

func TestModel_SchedulerMissing(t *testing.T) {
	h := setup(t, nil)
	if code := get(t, h, "/model", nil); code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("model without scheduler = %d", code)
	}
	var ready ReadyResponse
	if code := get(t, h, "/ready", &ready); code != stdhttp.StatusOK || len(ready.Checks) != 0 {
		t.Fatalf("ready without checks: %d %+v", code, ready)
	}
}

func TestVersion(t *testing.T) {
	h := setup(t, nil)
	var b struct {
		Service string `json:"service"`
	}
	if code := get(t, h, "/version", &b); code != stdhttp.StatusOK || b.Service != "interventions" {
		t.Fatalf("version: %d %+v", code, b)
	}
}

