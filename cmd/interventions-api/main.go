// @title         Interventions API
// @version       0.1.0
// @description   Urgency prediction and technician matching for field interventions

package main

import (
	"context"
	"os/signal"
	"syscall"

	"interventions/internal/core/version"
	"interventions/internal/platform/config"
	"interventions/internal/platform/logger"

	"interventions/internal/services/api"
)

func main() {
	// bring up logging early
	l := logger.Get()
	l.Info().Str("build", version.Info().String()).Msg("starting")

	// SIGINT/SIGTERM cancel ctx and the server drains within CORE_API_SHUTDOWN_GRACE
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, config.New()); err != nil {
		l.Fatal().Err(err).Msg("api stopped")
	}
	l.Info().Msg("api stopped")
}
