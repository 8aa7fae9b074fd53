package net_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "interventions/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest_RoundTrip(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	if pnet.WithRequest(base, "") != base {
		t.Fatalf("expected ctx to be unchanged for an empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

func TestRequestID_ReadsChiMiddleware(t *testing.T) {
	var seen string
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "from-header")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "from-header" {
		t.Fatalf("RequestID got %q want %q", seen, "from-header")
	}
}
