package module

import (
	"interventions/internal/platform/config"
	"interventions/internal/services/scheduler/repo"
)

// Options configures the scheduler module
type Options struct {
	// Demo mounts the fixed scenario routes
	Demo bool
	// Seeds overrides where the corpus and roster come from
	Seeds *repo.Seeds
}

// FromConfig reads CORE_SCHEDULER_* keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SCHEDULER_")
	return Options{
		Demo:  c.MayBool("DEMO", true),
		Seeds: repo.New(c),
	}
}
