package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	perr "interventions/internal/platform/errors"
	"interventions/internal/platform/logger"
	pnet "interventions/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeError sends err as the standard envelope and mirrors the request id header
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := pnet.RequestID(r.Context())
	if reqID != "" {
		w.Header().Set(chimw.RequestIDHeader, reqID)
	}
	status, env := pnet.Error(err, reqID)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// RecoverJSON turns a handler panic into a 500 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so net/http still drops the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("handler panicked")
			writeError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}

// Timeout gives each request a deadline d. A handler that is still silent when
// the deadline passes gets a 504 envelope once it returns
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			if rec.status == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(w, r, perr.Timeoutf("request took longer than %s", d))
			}
		})
	}
}
