package api

import (
	"context"

	"interventions/internal/platform/config"
	"interventions/internal/platform/logger"
	phttp "interventions/internal/platform/net/http"
)

// Run mounts the API on a new server and serves until ctx is cancelled.
// HTTP settings come from CORE_API_*, scheduler seeds from CORE_SCHEDULER_*
func Run(ctx context.Context, root config.Conf) error {
	srv := phttp.NewServer(root.Prefix("CORE_API_"))

	opt := FromConfig(root)
	opt.Logger = logger.Named("api")
	if err := Mount(ctx, srv.Router(), opt); err != nil {
		return err
	}
	return srv.Run(ctx)
}
