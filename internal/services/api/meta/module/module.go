// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"interventions/internal/core/version"
	modkit "interventions/internal/modkit"
	"interventions/internal/modkit/httpkit"
	str "interventions/internal/platform/strings"
	ptime "interventions/internal/platform/time"

	metahttp "interventions/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	scheduler string
	startedAt time.Time
}

// New constructs a meta module. scheduler names the registry entry /meta/model reads from
func New(_ modkit.Deps, scheduler string, opts ...modkit.Option) *Module {
	b := modkit.Build("meta", "/meta", opts...)
	return &Module{built: b, scheduler: scheduler, startedAt: ptime.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Scheduler:   m.scheduler,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
