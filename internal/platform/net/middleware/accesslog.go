package middleware

import (
	"net/http"
	"time"

	"interventions/internal/platform/logger"
	pnet "interventions/internal/platform/net"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs a request at warn once it takes this long. 0 never warns
	Slow time.Duration
}

// recorder remembers the status and size a handler wrote
type recorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rec *recorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the real writer
func (rec *recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }

// code is what the client saw, 200 when the handler wrote nothing
func (rec *recorder) code() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// AccessLogZerolog moves the request id onto the logger context so handlers get it
// from logger.C, then logs one line per request. 5xx log at error, slow ones at warn.
// Place it after RequestID
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			rec := &recorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r.WithContext(ctx))

			took := time.Since(start)
			l := logger.C(ctx)
			evt := l.Info()
			switch {
			case rec.code() >= http.StatusInternalServerError:
				evt = l.Error()
			case opt.Slow > 0 && took >= opt.Slow:
				evt = l.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.code()).
				Int("bytes", rec.size).
				Dur("took", took).
				Msg("request")
		})
	}
}
