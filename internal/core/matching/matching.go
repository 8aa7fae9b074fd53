// Package matching scores technicians against a job and picks the best one
package matching

import (
	"fmt"
	"strings"

	"interventions/internal/core/roster"
)

// component weights; a perfect match sums to exactly 1.0
const (
	weightSkill     = 0.4
	weightLocation  = 0.3
	weightExpertise = 0.2
	baseBonus       = 0.1

	locationMiss     = 0.3
	expertiseNeutral = 0.5
)

// NoTechnician is the name reported when nobody scores above zero
const NoTechnician = "No technician available"

// Result is the outcome of a ranking
type Result struct {
	TechnicianName string
	Score          float64
}

// Found reports whether a real technician was picked
func (r Result) Found() bool { return r.TechnicianName != NoTechnician }

func (r Result) String() string {
	return fmt.Sprintf("%s (Match Score: %.1f)", r.TechnicianName, r.Score)
}

// Score rates how well t fits a job, in [0.1, 1.0]
func Score(t roster.Technician, problemType, location string, required []string) float64 {
	// bonus first keeps a full match at exactly 1.0
	score := baseBonus
	score += weightSkill * skillMatch(t, required)
	score += weightLocation * locationMatch(t, location)
	score += weightExpertise * expertise(t, problemType)
	return score
}

// skillMatch is the share of required skills the technician has. Duplicates count each time
func skillMatch(t roster.Technician, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	hit := 0
	for _, s := range required {
		if t.HasSkill(s) {
			hit++
		}
	}
	return float64(hit) / float64(len(required))
}

func locationMatch(t roster.Technician, location string) float64 {
	if strings.Contains(strings.ToLower(t.Identity()), strings.ToLower(location)) {
		return 1.0
	}
	return locationMiss
}

func expertise(t roster.Technician, problemType string) float64 {
	if sp := t.Specialty(); sp != "" && strings.Contains(problemType, sp) {
		return 1.0
	}
	return expertiseNeutral
}

// Lister supplies candidates in a stable order
type Lister interface {
	ListAvailable() []roster.Technician
}

// Ranker picks the best technician from a Lister
type Ranker struct {
	techs Lister
}

// NewRanker panics on a nil lister
func NewRanker(l Lister) *Ranker {
	if l == nil {
		panic("matching.Ranker requires a non nil Lister")
	}
	return &Ranker{techs: l}
}

// RankBest returns the highest scoring technician. Ties keep the earlier one
func (r *Ranker) RankBest(problemType, location string, required []string) Result {
	best := Result{TechnicianName: NoTechnician}
	for _, t := range r.techs.ListAvailable() {
		if s := Score(t, problemType, location, required); s > best.Score {
			best = Result{TechnicianName: t.Name(), Score: s}
		}
	}
	return best
}
