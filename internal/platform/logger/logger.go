// Package logger is the process logger: zerolog configured from LOG_* with
// request scoped children carrying request_id
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"interventions/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog's logger so callers never import zerolog just for the type
type Logger = zerolog.Logger

// DefaultService tags every line when LOG_SERVICE is unset
const DefaultService = "interventions"

// Options configures Init. FromEnv fills everything but Writer
type Options struct {
	// Level is trace, debug, info, warn (or warning), error, fatal or panic
	Level string
	// Format is console or json
	Format    string
	Service   string
	Component string
	// Writer defaults to stdout. The cli points it at stderr
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
}

var levels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// FromEnv reads LOG_* through the raw reader, which cannot log and so cannot cycle back here
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.GetOneOf("LEVEL", "debug", levels...),
		Format:      env.GetOneOf("FORMAT", "console", "console", "json"),
		Service:     env.Get("SERVICE", DefaultService),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call, or first Get, has any effect
func Init(opt Options) {
	initOnce.Do(func() {
		l := build(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func build(opt Options) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opt.Writer
	if out == nil {
		out = os.Stdout
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	c := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if opt.Component != "" {
		c = c.Str("component", opt.Component)
	}
	if opt.WithCaller {
		c = c.Caller()
	}

	l := c.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// parseLevel falls back to debug for blank or unknown levels
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

type requestKey struct{}

// WithRequest stores reqID for C. A blank id leaves ctx as is
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestKey{}, reqID)
}

// Into attaches l to ctx. C builds on it instead of the root logger
func Into(ctx context.Context, l *Logger) context.Context { return l.WithContext(ctx) }

// C is the logger for a request: the one attached with Into, else the root,
// plus request_id when ctx has one
func C(ctx context.Context) *Logger {
	base := Get()
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		base = l
	}
	id, _ := ctx.Value(requestKey{}).(string)
	if id == "" {
		return base
	}
	l := base.With().Str("request_id", id).Logger()
	return &l
}

// Named is a root child tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
