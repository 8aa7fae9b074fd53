// Package api provides the HTTP API for the application
package api

import (
	"context"

	"interventions/internal/core/version"
	"interventions/internal/platform/config"
	"interventions/internal/platform/logger"
	phttp "interventions/internal/platform/net/http"

	"interventions/internal/modkit"
	"interventions/internal/modkit/httpkit"
	"interventions/internal/modkit/swaggerkit"

	metamod "interventions/internal/services/api/meta/module"
	schedmod "interventions/internal/services/scheduler/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions
	Scheduler      schedmod.Options
}

// FromConfig reads CORE_API_* keys and the scheduler options
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  c.MayBool("SWAGGER", true),
		EnableProfiler: c.MayBool("PROFILER", false),
		Stack: httpkit.StackOptions{
			CORSOrigins: c.MayCSV("CORS_ORIGINS", nil),
			SlowRequest: c.MayDuration("SLOW_REQUEST", 0),
			Timeout:     c.MayDuration("REQUEST_TIMEOUT", 0),
			MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 0),
		},
		Scheduler: schedmod.FromConfig(cfg),
	}
}

// Mount builds every module and mounts the API onto r. It fails when seed data cannot be loaded
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}

	sched, err := schedmod.New(ctx, deps, opt.Scheduler)
	if err != nil {
		return err
	}

	// Swagger + profiler live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger,
		swaggerkit.WithVersion(version.Info().Version),
		swaggerkit.WithTitleSuffix(opt.Config.Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")),
	)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		modkit.MountAll(api, metamod.New(deps, sched.Name()), sched)
	})
	return nil
}
