// Package http provides http transport for the scheduler
package http

import (
	stdhttp "net/http"

	"interventions/internal/modkit/httpkit"
	"interventions/internal/services/scheduler/domain"
)

// Options toggles optional routes
type Options struct {
	Demo bool
}

// Register mounts scheduler endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, opt Options) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/urgency", h.urgency)
	httpkit.PostJSON(r, "/match", h.match)
	httpkit.PostJSON(r, "/assess", h.assess)
	httpkit.Get(r, "/technicians", h.technicians)
	httpkit.Get(r, "/model", h.model)

	if opt.Demo {
		httpkit.Get(r, "/demo/urgency", h.demoUrgency)
		httpkit.Get(r, "/demo/skills", h.demoSkills)
	}
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /scheduler/urgency Scheduler schedulerUrgency
// @Summary Predict the urgency of a problem description
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body domain.UrgencyInput true "Description"
// @Success 200 {object} domain.UrgencyResult "ok"
// @Router /scheduler/urgency [post]
func (h *handlers) urgency(r *stdhttp.Request, in domain.UrgencyInput) (any, error) {
	return h.svc.PredictUrgency(r.Context(), in)
}

// swagger:route POST /scheduler/match Scheduler schedulerMatch
// @Summary Rank technicians and return the best match
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body domain.MatchInput true "Job"
// @Success 200 {object} domain.MatchResult "ok"
// @Router /scheduler/match [post]
func (h *handlers) match(r *stdhttp.Request, in domain.MatchInput) (any, error) {
	return h.svc.RankTechnicians(r.Context(), in)
}

// swagger:route POST /scheduler/assess Scheduler schedulerAssess
// @Summary Score urgency and pick a technician for one intervention
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body domain.AssessInput true "Intervention"
// @Success 200 {object} domain.Assessment "ok"
// @Router /scheduler/assess [post]
func (h *handlers) assess(r *stdhttp.Request, in domain.AssessInput) (any, error) {
	return h.svc.Assess(r.Context(), in)
}

// @Summary List the technician roster
// @Tags Scheduler
// @Produce json
// @Success 200 {array} domain.Technician "ok"
// @Router /scheduler/technicians [get]
func (h *handlers) technicians(r *stdhttp.Request) (any, error) {
	return h.svc.Technicians(r.Context())
}

// @Summary Vocabulary and learned word weights
// @Tags Scheduler
// @Produce json
// @Success 200 {object} domain.ModelStats "ok"
// @Router /scheduler/model [get]
func (h *handlers) model(r *stdhttp.Request) (any, error) {
	return h.svc.Model(r.Context())
}

// @Summary Run the fixed urgency scenarios
// @Tags Scheduler
// @Produce json
// @Success 200 {array} domain.DemoUrgencyCase "ok"
// @Router /scheduler/demo/urgency [get]
func (h *handlers) demoUrgency(r *stdhttp.Request) (any, error) {
	return h.svc.DemoUrgency(r.Context())
}

// @Summary Run the fixed skill matching scenarios
// @Tags Scheduler
// @Produce json
// @Success 200 {array} domain.DemoSkillCase "ok"
// @Router /scheduler/demo/skills [get]
func (h *handlers) demoSkills(r *stdhttp.Request) (any, error) {
	return h.svc.DemoSkills(r.Context())
}
