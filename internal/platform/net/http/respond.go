// Package http hosts the chi backed server, the router seam and the JSON envelope writers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "interventions/internal/platform/errors"
	pnet "interventions/internal/platform/net"
)

// Envelope is the body every endpoint answers with
type Envelope = pnet.Wire

// Response is what return style handlers produce. An error Body picks its own status,
// a 204 is sent without a body and anything else is wrapped in an Envelope
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// JSON sends v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Handle turns a Response producer into a HandlerFunc
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).send(w, r) }
}

func (resp Response) send(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	hdr := w.Header()
	for k, vv := range resp.Header {
		hdr[k] = append(hdr[k], vv...)
	}

	var (
		reqID  = pnet.RequestID(r.Context())
		status int
		env    Envelope
	)
	switch body := resp.Body.(type) {
	case error:
		status, env = pnet.Error(body, reqID)
	default:
		if resp.Status == stdhttp.StatusNoContent {
			w.WriteHeader(stdhttp.StatusNoContent)
			return
		}
		status, env = pnet.Reply(max(resp.Status, stdhttp.StatusOK), body, reqID)
	}
	JSON(w, status, env)
}

// OK wraps data in a 200
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error wraps err, its code decides the status
func Error(err error) Response { return Response{Body: err} }

// NotFound answers unknown routes with a 404 envelope
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	Error(perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path)).send(w, r)
}

// MethodNotAllowed answers a known path with the wrong verb. There is no error code for it
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status, env := pnet.Reply(stdhttp.StatusMethodNotAllowed, nil, pnet.RequestID(r.Context()))
	env.Error = r.Method + " not allowed on " + r.URL.Path
	JSON(w, status, env)
}
