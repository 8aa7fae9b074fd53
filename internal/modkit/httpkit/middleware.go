package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"interventions/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; the zero value is usable
type StackOptions struct {
	CORSOrigins []string
	// SlowRequest logs requests at warn level past this duration (default 500ms)
	SlowRequest time.Duration
	// Timeout cancels request contexts (default 30s)
	Timeout time.Duration
	// MaxInFlight caps concurrent requests, 0 means unlimited
	MaxInFlight int
}

// CommonStack returns the baseline middleware for API routes, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, before recover so panics are still logged with status
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// safety
		middleware.RecoverJSON,
		middleware.Throttle(o.MaxInFlight),

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.AllowContentType("application/json"),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
