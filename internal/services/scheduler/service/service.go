// Package service contains scheduler workflows over the urgency model and the technician ranker
package service

import (
	"context"

	"interventions/internal/core/matching"
	"interventions/internal/core/roster"
	"interventions/internal/core/urgency"
	"interventions/internal/platform/logger"
	ptime "interventions/internal/platform/time"
	"interventions/internal/services/scheduler/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for the scheduler
type Service interface {
	domain.ServicePort
	domain.ReadyPort
}

// newID is a seam so tests can pin assessment ids
var newID = func() string { return uuid.NewString() }

// Svc implements Service. It is immutable after New and safe for concurrent use
type Svc struct {
	predictor *urgency.Predictor
	ranker    *matching.Ranker
	directory *roster.Directory
	examples  int
}

// New trains the urgency model on corpus and ranks against dir
func New(corpus urgency.Corpus, dir *roster.Directory) *Svc {
	if dir == nil {
		panic("scheduler.Service requires a non nil Directory")
	}
	examples := corpus.Examples()
	return &Svc{
		predictor: urgency.NewPredictor(urgency.Fit(examples)),
		ranker:    matching.NewRanker(dir),
		directory: dir,
		examples:  len(examples),
	}
}

// Load pulls seed data from seeds and builds the service
func Load(ctx context.Context, seeds domain.SeedPort) (*Svc, error) {
	corpus, err := seeds.Corpus(ctx)
	if err != nil {
		return nil, err
	}
	dir, err := seeds.Roster(ctx)
	if err != nil {
		return nil, err
	}
	return New(corpus, dir), nil
}

// PredictUrgency scores a description and scales it to a 1..10 level
func (s *Svc) PredictUrgency(ctx context.Context, in domain.UrgencyInput) (domain.UrgencyResult, error) {
	out := s.urgency(in.Description)
	logger.C(ctx).Debug().Int("urgency_level", out.Level).Float64("confidence", out.Confidence).Msg("urgency predicted")
	return out, nil
}

// RankTechnicians picks the best technician for a job
func (s *Svc) RankTechnicians(ctx context.Context, in domain.MatchInput) (domain.MatchResult, error) {
	out := s.match(in)
	logger.C(ctx).Debug().Str("technician", out.Technician).Float64("score", out.Score).Msg("technician ranked")
	return out, nil
}

// Assess scores urgency and assigns a technician in one step
func (s *Svc) Assess(ctx context.Context, in domain.AssessInput) (domain.Assessment, error) {
	a := domain.Assessment{
		ID:         newID(),
		AssessedAt: ptime.Stamp(ptime.Now()),
		Urgency:    s.urgency(in.Description),
		Match:      s.match(in.Match()),
	}
	logger.C(ctx).Info().
		Str("assessment_id", a.ID).
		Int("urgency_level", a.Urgency.Level).
		Str("technician", a.Match.Technician).
		Msg("intervention assessed")
	return a, nil
}

// Technicians lists the roster in tie-break order
func (s *Svc) Technicians(context.Context) ([]domain.Technician, error) {
	techs := s.directory.ListAvailable()
	out := make([]domain.Technician, 0, len(techs))
	for _, t := range techs {
		out = append(out, domain.Technician{
			Name:         t.Name(),
			HomeLocation: t.HomeLocation(),
			Specialty:    t.Specialty(),
			Skills:       t.Skills(),
		})
	}
	return out, nil
}

// Model reports the vocabulary the predictor was trained on
func (s *Svc) Model(context.Context) (domain.ModelStats, error) {
	words := s.predictor.Model().Words()
	out := domain.ModelStats{
		Vocabulary: len(words),
		Examples:   s.examples,
		Words:      make([]domain.WordWeight, 0, len(words)),
	}
	for _, w := range words {
		out.Words = append(out.Words, domain.WordWeight{Word: w.Word, Weight: w.Weight, Frequency: w.Frequency})
	}
	return out, nil
}

// Ready fails when the model learned nothing or nobody can be dispatched
func (s *Svc) Ready(context.Context) error {
	switch {
	case s.predictor.Model().Size() == 0:
		return errEmptyModel
	case s.directory.Len() == 0:
		return errEmptyRoster
	}
	return nil
}

func (s *Svc) urgency(description string) domain.UrgencyResult {
	score := s.predictor.Predict(description)
	return domain.UrgencyResult{
		Level:      urgency.ScaleToUrgencyLevel(score),
		Score:      score,
		Confidence: s.predictor.Confidence(description),
	}
}

func (s *Svc) match(in domain.MatchInput) domain.MatchResult {
	r := s.ranker.RankBest(in.ProblemType, in.Location, in.RequiredSkills)
	return domain.MatchResult{
		Technician: r.TechnicianName,
		Score:      r.Score,
		Found:      r.Found(),
		Display:    r.String(),
	}
}
