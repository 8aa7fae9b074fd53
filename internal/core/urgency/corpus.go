package urgency

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var embeddedCorpus []byte

const corpusVersion = 1

type rawCorpus struct {
	Version int      `yaml:"version"`
	Urgent  []string `yaml:"urgent"`
	Normal  []string `yaml:"normal"`
}

// Corpus is an ordered labeled training set: urgent texts first, then normal ones
type Corpus struct {
	Urgent []string
	Normal []string
}

// Examples flattens the corpus into training order
func (c Corpus) Examples() []Example {
	out := make([]Example, 0, len(c.Urgent)+len(c.Normal))
	for _, t := range c.Urgent {
		out = append(out, Example{Text: t, Label: LabelUrgent})
	}
	for _, t := range c.Normal {
		out = append(out, Example{Text: t, Label: LabelNormal})
	}
	return out
}

// DefaultCorpus returns the embedded startup corpus
func DefaultCorpus() (Corpus, error) { return ParseCorpus(embeddedCorpus) }

// ParseCorpus decodes a YAML corpus document
func ParseCorpus(data []byte) (Corpus, error) {
	var rc rawCorpus
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return Corpus{}, fmt.Errorf("urgency: parse corpus: %w", err)
	}
	if rc.Version != corpusVersion {
		return Corpus{}, fmt.Errorf("urgency: unsupported corpus version %d (want %d)", rc.Version, corpusVersion)
	}

	c := Corpus{Urgent: compact(rc.Urgent), Normal: compact(rc.Normal)}
	if len(c.Urgent)+len(c.Normal) == 0 {
		return Corpus{}, fmt.Errorf("urgency: corpus has no examples")
	}
	return c, nil
}

// compact drops blank entries and keeps order
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
