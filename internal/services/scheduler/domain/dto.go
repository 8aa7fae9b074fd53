// Package domain holds DTOs for scheduler http, cli and service contracts
package domain

// UrgencyInput is a free text problem description. Blank is allowed and scores the neutral default
type UrgencyInput struct {
	Description string `json:"description" validate:"max=4000" example:"CAR ACCIDENT - FIRE - PEOPLE TRAPPED - EMERGENCY!!!"`
}

// UrgencyResult is a predicted urgency
type UrgencyResult struct {
	Level      int     `json:"level" example:"8"`
	Score      float64 `json:"score" example:"0.85"`
	Confidence float64 `json:"confidence" example:"0.2222"`
}

// MatchInput describes the job a technician is ranked against
type MatchInput struct {
	ProblemType    string   `json:"problem_type" validate:"max=64" example:"ELECTRICAL"`
	Location       string   `json:"location" validate:"max=128" example:"Downtown"`
	RequiredSkills []string `json:"required_skills" validate:"max=32,dive,max=64" example:"ELECTRICAL,HEIGHTS"`
}

// MatchResult is the best technician for a job. Found is false for the sentinel
type MatchResult struct {
	Technician string  `json:"technician" example:"John Electric"`
	Score      float64 `json:"score" example:"1"`
	Found      bool    `json:"found" example:"true"`
	Display    string  `json:"display" example:"John Electric (Match Score: 1.0)"`
}

// AssessInput combines urgency and matching inputs for one intervention
type AssessInput struct {
	Description    string   `json:"description" validate:"max=4000" example:"Broken traffic light at busy intersection"`
	ProblemType    string   `json:"problem_type" validate:"max=64" example:"ELECTRICAL"`
	Location       string   `json:"location" validate:"max=128" example:"Downtown"`
	RequiredSkills []string `json:"required_skills" validate:"max=32,dive,max=64" example:"ELECTRICAL,HEIGHTS"`
}

// Urgency projects the urgency half of the input
func (in AssessInput) Urgency() UrgencyInput { return UrgencyInput{Description: in.Description} }

// Match projects the matching half of the input
func (in AssessInput) Match() MatchInput {
	return MatchInput{ProblemType: in.ProblemType, Location: in.Location, RequiredSkills: in.RequiredSkills}
}

// Assessment is a scored intervention with its assigned technician
type Assessment struct {
	ID         string        `json:"id" example:"0b9f6b8e-8d1c-4a43-9f5c-0f1f9b7c2a11"`
	AssessedAt string        `json:"assessed_at" example:"2026-10-19T08:30:00Z"`
	Urgency    UrgencyResult `json:"urgency"`
	Match      MatchResult   `json:"match"`
}

// Technician is the public view of a roster entry
type Technician struct {
	Name         string   `json:"name" example:"John Electric"`
	HomeLocation string   `json:"home_location" example:"Downtown"`
	Specialty    string   `json:"specialty,omitempty" example:"ELECTRIC"`
	Skills       []string `json:"skills" example:"ELECTRICAL,HEIGHTS,NETWORK"`
}

// WordWeight is one learned vocabulary entry
type WordWeight struct {
	Word      string  `json:"word" example:"emergency"`
	Weight    float64 `json:"weight" example:"0.8285"`
	Frequency int     `json:"frequency" example:"3"`
}

// ModelStats describes the trained urgency model
type ModelStats struct {
	Vocabulary int          `json:"vocabulary" example:"40"`
	Examples   int          `json:"examples" example:"8"`
	Words      []WordWeight `json:"words"`
}

// DemoUrgencyCase is one fixed urgency scenario and its outcome
type DemoUrgencyCase struct {
	Problem string        `json:"problem"`
	Urgency UrgencyResult `json:"urgency"`
	Match   MatchResult   `json:"match"`
}

// DemoSkillCase is one fixed matching scenario and its outcome
type DemoSkillCase struct {
	Input MatchInput  `json:"input"`
	Match MatchResult `json:"match"`
}
