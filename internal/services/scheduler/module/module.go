// Package module wires the scheduler into the API using modkit
package module

import (
	"context"

	modkit "interventions/internal/modkit"
	"interventions/internal/modkit/httpkit"
	str "interventions/internal/platform/strings"
	"interventions/internal/services/scheduler/domain"
	schedhttp "interventions/internal/services/scheduler/http"
	"interventions/internal/services/scheduler/repo"
	"interventions/internal/services/scheduler/service"
)

// Ports is the scheduler port bundle other modules can look up
type Ports struct {
	Service domain.ServicePort
	Ready   domain.ReadyPort
}

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	opt   Options
	svc   service.Service
}

// New loads seed data, trains the urgency model and returns the module.
// Bad seed files are an error so startup fails loudly
func New(ctx context.Context, deps modkit.Deps, opt Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build("scheduler", "/scheduler", opts...)

	seeds := opt.Seeds
	if seeds == nil {
		seeds = repo.New(deps.Cfg.Prefix("CORE_SCHEDULER_"))
	}
	svc, err := service.Load(ctx, seeds)
	if err != nil {
		return nil, err
	}

	stats, _ := svc.Model(ctx)
	techs, _ := svc.Technicians(ctx)
	deps.Logger("scheduler").Info().
		Int("vocabulary", stats.Vocabulary).
		Int("examples", stats.Examples).
		Int("technicians", len(techs)).
		Msg("urgency model trained")

	return &Module{built: b, opt: opt, svc: svc}, nil
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		schedhttp.Register(rr, m.svc, schedhttp.Options{Demo: m.opt.Demo})
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports implements modkit.Module
func (m *Module) Ports() any { return Ports{Service: m.svc, Ready: m.svc} }

var _ modkit.Module = (*Module)(nil)
