package urgency

import (
	"math"
	"regexp"
	"strings"
)

const (
	// MissingScore is returned for a blank description
	MissingScore = 0.3
	// MissingConfidence is returned when there are no words to judge
	MissingConfidence = 0.5

	boostAmount = 0.2
)

// keyword tiers used when no description word is in the model vocabulary
var fallbackTiers = []struct {
	re     *regexp.Regexp
	weight float64
}{
	{regexp.MustCompile(`\b(accident|fire|emergency|danger|risk|urgent)\b`), 0.6},
	{regexp.MustCompile(`\b(broken|not working|critical|asap|immediately)\b`), 0.3},
	{regexp.MustCompile(`\b(children|school|hospital|elderly)\b`), 0.1},
}

// Predictor turns descriptions into urgency scores using a trained Model
type Predictor struct {
	model *Model
}

// NewPredictor wraps a trained model
func NewPredictor(m *Model) *Predictor {
	if m == nil {
		panic("urgency.Predictor requires a non nil Model")
	}
	return &Predictor{model: m}
}

// Model returns the model backing p
func (p *Predictor) Model() *Model { return p.model }

// Predict returns an urgency score in [0,1].
// Known words are averaged; "!!!" or "emergency" adds a capped boost.
// With no known words the keyword tiers decide
func (p *Predictor) Predict(description string) float64 {
	if strings.TrimSpace(description) == "" {
		return MissingScore
	}

	lowered := lower(description)

	var total float64
	matched := 0
	for _, tok := range strings.Fields(lowered) {
		if w, ok := p.model.WeightOf(tok); ok {
			total += w
			matched++
		}
	}

	if matched == 0 {
		return fallback(lowered)
	}

	score := total / float64(matched)
	if strings.Contains(description, "!!!") || strings.Contains(lowered, "emergency") {
		score = math.Min(score+boostAmount, 1.0)
	}
	return score
}

// fallback scores an already lowercased description by keyword tiers
func fallback(lowered string) float64 {
	score := 0.0
	for _, tier := range fallbackTiers {
		if tier.re.MatchString(lowered) {
			score += tier.weight
		}
	}
	return math.Min(score, 1.0)
}

// Confidence is the share of description words the model knows, in [0,1].
// Every whitespace token counts toward the denominator, including ones too short to be learned
func (p *Predictor) Confidence(description string) float64 {
	toks := tokenize(description)
	if len(toks) == 0 {
		return MissingConfidence
	}
	known := 0
	for _, tok := range toks {
		if _, ok := p.model.WeightOf(tok); ok {
			known++
		}
	}
	return math.Min(float64(known)/float64(len(toks)), 1.0)
}

// ScaleToUrgencyLevel maps a score in [0,1] to a 1..10 level
func ScaleToUrgencyLevel(score float64) int {
	switch {
	case math.IsNaN(score) || score < 0:
		score = 0
	case score > 1:
		score = 1
	}
	return int(math.Floor(score*9)) + 1
}
