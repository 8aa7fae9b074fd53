package domain

import (
	"context"

	"interventions/internal/core/roster"
	"interventions/internal/core/urgency"
)

// ServicePort defines the scheduler service contract shared by http and cli
type ServicePort interface {
	PredictUrgency(ctx context.Context, in UrgencyInput) (UrgencyResult, error)
	RankTechnicians(ctx context.Context, in MatchInput) (MatchResult, error)
	Assess(ctx context.Context, in AssessInput) (Assessment, error)
	Technicians(ctx context.Context) ([]Technician, error)
	Model(ctx context.Context) (ModelStats, error)
	DemoUrgency(ctx context.Context) ([]DemoUrgencyCase, error)
	DemoSkills(ctx context.Context) ([]DemoSkillCase, error)
}

// ReadyPort reports whether the trained model and roster are usable
type ReadyPort interface {
	Ready(ctx context.Context) error
}

// SeedPort supplies the training corpus and technician roster at startup
type SeedPort interface {
	Corpus(ctx context.Context) (urgency.Corpus, error)
	Roster(ctx context.Context) (*roster.Directory, error)
}
