package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "interventions/internal/platform/errors"
	phttp "interventions/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Description string `json:"description" validate:"required"`
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	MountAPIV1(r, CommonStack(StackOptions{}), func(api Router) {
		MountUnder(api, "/probe", nil, func(pr Router) {
			Get(pr, "/ok", func(*http.Request) (any, error) {
				return map[string]int{"level": 8}, nil
			})
			Get(pr, "/missing", func(*http.Request) (any, error) {
				return nil, perr.NotFoundf("technician not found")
			})
			Get(pr, "/panic", func(*http.Request) (any, error) {
				panic("boom")
			})
			PostJSON(pr, "/echo", func(_ *http.Request, in echoIn) (any, error) {
				return in, nil
			})
		})
	})
	return r.Mux()
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func TestMountAPIV1_EnvelopeAndRequestID(t *testing.T) {
	h := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/probe/ok", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	env := decode(t, rr)
	if env.StatusCode != http.StatusOK || env.RequestID != "rid-42" {
		t.Fatalf("bad envelope %+v", env)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("NoCache headers missing")
	}
}

func TestMountAPIV1_ErrorMapping(t *testing.T) {
	h := newAPI(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/probe/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if env := decode(t, rr); env.Code != perr.ErrorCodeNotFound || env.Error != "technician not found" {
		t.Fatalf("bad envelope %+v", env)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/probe/panic", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d", rr.Code)
	}
	if env := decode(t, rr); env.Code != perr.ErrorCodePanic {
		t.Fatalf("panic envelope %+v", env)
	}
}

func TestPostJSON_BindsAndValidates(t *testing.T) {
	h := newAPI(t)

	post := func(body, ct string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/probe/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", ct)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	if rr := post(`{"description":"gas leak"}`, "application/json"); rr.Code != http.StatusOK {
		t.Fatalf("valid body status = %d", rr.Code)
	}

	rr := post(`{}`, "application/json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid body status = %d", rr.Code)
	}
	if env := decode(t, rr); env.Code != perr.ErrorCodeValidation || env.Field != "description" {
		t.Fatalf("bad validation envelope %+v", env)
	}

	if rr := post(`description=x`, "text/plain"); rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text body status = %d", rr.Code)
	}
}

func TestCall_PassesThroughResponse(t *testing.T) {
	h := Call(func(*http.Request) (any, error) {
		return Response{Status: http.StatusAccepted, Body: "queued"}, nil
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestMountAPI_TrimsVersion(t *testing.T) {
	mux := chi.NewRouter()
	MountAPI(phttp.AdaptChi(mux), "/v2/", nil, func(r Router) {
		Get(r, "/model", func(*http.Request) (any, error) { return "v2", nil })
	})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/model", nil))
	if rr.Code != http.StatusOK || decode(t, rr).Data != "v2" {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
}
