package service

import (
	"context"

	"interventions/internal/services/scheduler/domain"
)

// DemoProblems are the fixed urgency scenarios, each dispatched as DemoDispatch
var DemoProblems = []string{
	"CAR ACCIDENT - FIRE - PEOPLE TRAPPED - EMERGENCY!!!",
	"Broken traffic light near school, children at risk",
	"Small crack in sidewalk needs repair",
	"Water pipe burst flooding street URGENT",
	"Park bench needs painting next week",
}

// DemoDispatch is the job every urgency scenario is matched against
var DemoDispatch = domain.MatchInput{
	ProblemType:    "ELECTRICAL",
	Location:       "Downtown",
	RequiredSkills: []string{"ELECTRICAL", "HEIGHTS"},
}

// DemoJobs are the fixed skill matching scenarios
var DemoJobs = []domain.MatchInput{
	{ProblemType: "ELECTRICAL", Location: "Downtown", RequiredSkills: []string{"ELECTRICAL", "HEIGHTS"}},
	{ProblemType: "PLUMBING", Location: "Suburbs", RequiredSkills: []string{"PLUMBING", "EMERGENCY"}},
	{ProblemType: "CONSTRUCTION", Location: "City Center", RequiredSkills: []string{"CONSTRUCTION", "ROAD_WORK"}},
	{ProblemType: "GENERAL", Location: "Downtown", RequiredSkills: []string{"GENERAL"}},
}

// DemoUrgency runs every DemoProblems entry
func (s *Svc) DemoUrgency(context.Context) ([]domain.DemoUrgencyCase, error) {
	match := s.match(DemoDispatch)
	out := make([]domain.DemoUrgencyCase, 0, len(DemoProblems))
	for _, p := range DemoProblems {
		out = append(out, domain.DemoUrgencyCase{Problem: p, Urgency: s.urgency(p), Match: match})
	}
	return out, nil
}

// DemoSkills runs every DemoJobs entry
func (s *Svc) DemoSkills(context.Context) ([]domain.DemoSkillCase, error) {
	out := make([]domain.DemoSkillCase, 0, len(DemoJobs))
	for _, j := range DemoJobs {
		out = append(out, domain.DemoSkillCase{Input: j, Match: s.match(j)})
	}
	return out, nil
}
