// Package urgency scores free-text problem descriptions with an online word-weight learner.
//
// Each word seen during training carries a weight in [0,1] that moves toward the label of every
// example it appears in (exponential moving average, rate 0.3, prior 0.5). Prediction averages the
// weights of known words and falls back to a keyword heuristic when nothing is known
package urgency

import "sort"

const (
	// learningRate is the EMA step toward each example's label
	learningRate = 0.3
	// priorWeight is the starting weight of an unseen word
	priorWeight = 0.5
	// minTokenRunes is the shortest token the model learns
	minTokenRunes = 3
)

// Labels used by the startup corpus
const (
	LabelUrgent = 1.0
	LabelNormal = 0.0
)

// Example is one labeled training text
type Example struct {
	Text  string
	Label float64
}

// WordStat is a diagnostic view of a single learned word
type WordStat struct {
	Word      string
	Weight    float64
	Frequency int
}

// Model holds learned per-word weights and occurrence counts.
// A Model never changes after it is returned, so it is safe for concurrent reads
type Model struct {
	weights     map[string]float64
	frequencies map[string]int
}

// Empty returns a model that knows no words
func Empty() *Model {
	return &Model{
		weights:     map[string]float64{},
		frequencies: map[string]int{},
	}
}

// Fit trains a fresh model on examples in order
func Fit(examples []Example) *Model { return Empty().Train(examples) }

// Train folds examples into a copy of m and returns it. Updates compound with whatever m
// already learned; m itself is left untouched. Order matters: later labels dominate
func (m *Model) Train(examples []Example) *Model {
	next := m.clone()
	for _, ex := range examples {
		next.learn(ex.Text, ex.Label)
	}
	return next
}

func (m *Model) learn(text string, label float64) {
	for _, tok := range tokenize(text) {
		if !learnable(tok) {
			continue
		}
		m.frequencies[tok]++

		w, ok := m.weights[tok]
		if !ok {
			w = priorWeight
		}
		m.weights[tok] = w + (label-w)*learningRate
	}
}

func (m *Model) clone() *Model {
	out := &Model{
		weights:     make(map[string]float64, len(m.weights)),
		frequencies: make(map[string]int, len(m.frequencies)),
	}
	for k, v := range m.weights {
		out.weights[k] = v
	}
	for k, v := range m.frequencies {
		out.frequencies[k] = v
	}
	return out
}

// WeightOf returns the learned weight for word; found is false if training never saw it
func (m *Model) WeightOf(word string) (weight float64, found bool) {
	weight, found = m.weights[word]
	return weight, found
}

// Frequency returns how many times word occurred in the training texts
func (m *Model) Frequency(word string) int { return m.frequencies[word] }

// Size is the number of learned words
func (m *Model) Size() int { return len(m.weights) }

// Words lists every learned word sorted alphabetically
func (m *Model) Words() []WordStat {
	out := make([]WordStat, 0, len(m.weights))
	for w, wt := range m.weights {
		out = append(out, WordStat{Word: w, Weight: wt, Frequency: m.frequencies[w]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}
