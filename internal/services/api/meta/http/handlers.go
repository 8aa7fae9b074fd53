// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"interventions/internal/core/version"
	"interventions/internal/modkit/httpkit"
	"interventions/internal/modkit/module"
	perr "interventions/internal/platform/errors"
	ptime "interventions/internal/platform/time"
	"interventions/internal/services/scheduler/domain"
)

// ReadyTimeout bounds the whole readiness probe
const ReadyTimeout = 2 * time.Second

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Scheduler is the registry name the scheduler ports live under
	Scheduler string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/model", h.model)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"interventions"`
	Started string `json:"started"  example:"2026-10-19T08:00:00Z"`
	Now     string `json:"now"      example:"2026-10-19T08:05:00Z"`
}

// ReadyCheck describes a single module check
type ReadyCheck struct {
	Name   string `json:"name"   example:"scheduler"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"scheduler: no technicians on the roster"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T08:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"interventions"`
	Started string   `json:"started" example:"2026-10-19T08:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules" example:"meta,scheduler"`
}

// ModelResponse reports the trained urgency model and build info
type ModelResponse struct {
	Vocabulary  int               `json:"vocabulary"  example:"40"`
	Examples    int               `json:"examples"    example:"8"`
	Technicians int               `json:"technicians" example:"3"`
	Build       version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: ptime.Stamp(h.deps.StartedAt),
		Now:     ptime.Stamp(ptime.Now()),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over every registered module that can report it
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "a module is not ready"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	resp := ReadyResponse{Status: "ok", Checks: []ReadyCheck{}, Now: ptime.Stamp(ptime.Now())}
	for _, name := range module.Names() {
		p, ok := module.PortsAs[domain.ReadyPort](name)
		if !ok {
			continue
		}
		c := ReadyCheck{Name: name, Status: "ok"}
		if err := p.Ready(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
			resp.Status = "fail"
		}
		resp.Checks = append(resp.Checks, c)
	}

	if resp.Status != "ok" {
		return httpkit.Response{
			Status: http.StatusServiceUnavailable,
			Body:   resp,
			Header: http.Header{"Retry-After": []string{"5"}},
		}, nil
	}
	return resp, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: ptime.Stamp(h.deps.StartedAt),
		Uptime:  int64(ptime.Since(h.deps.StartedAt) / time.Second),
		Modules: module.Names(),
	}, nil
}

// swagger:route GET /meta/model Meta metaModel
// @Summary Urgency model size, roster size and build
// @Tags Meta
// @Produce json
// @Success 200 {object} ModelResponse "ok"
// @Failure 503 {object} httpkit.Envelope "scheduler not mounted"
// @Router /meta/model [get]
func (h *handlers) model(r *http.Request) (any, error) {
	svc, ok := module.PortsAs[domain.ServicePort](h.deps.Scheduler)
	if !ok {
		return nil, perr.Unavailablef("meta: %s module is not registered", h.deps.Scheduler)
	}
	stats, err := svc.Model(r.Context())
	if err != nil {
		return nil, err
	}
	techs, err := svc.Technicians(r.Context())
	if err != nil {
		return nil, err
	}
	return ModelResponse{
		Vocabulary:  stats.Vocabulary,
		Examples:    stats.Examples,
		Technicians: len(techs),
		Build:       version.Info(),
	}, nil
}
