// Package repo loads scheduler seed data: the urgency training corpus and the technician roster.
// Both come from the embedded defaults unless a file override is configured
package repo

import (
	"context"
	"os"

	"interventions/internal/core/roster"
	"interventions/internal/core/urgency"
	"interventions/internal/platform/config"
	perr "interventions/internal/platform/errors"
	"interventions/internal/platform/logger"
)

// Config keys under the scheduler prefix
const (
	KeyCorpusFile = "CORPUS_FILE"
	KeyRosterFile = "ROSTER_FILE"
)

// Seeds reads seed data once per call; callers load at startup
type Seeds struct {
	cfg    config.Conf
	corpus string
	roster string
}

// New returns seeds reading overrides from cfg (already prefixed, e.g. CORE_SCHEDULER_)
func New(cfg config.Conf) *Seeds { return &Seeds{cfg: cfg} }

// WithFiles returns a copy where non empty paths win over the configured keys
func (s *Seeds) WithFiles(corpus, roster string) *Seeds {
	c := *s
	c.corpus, c.roster = corpus, roster
	return &c
}

func (s *Seeds) read(key, path string) ([]byte, string, error) {
	if path == "" {
		return s.cfg.MayFile(key)
	}
	data, err := os.ReadFile(path)
	return data, path, err
}

// Corpus returns the override corpus when configured, else the embedded one
func (s *Seeds) Corpus(ctx context.Context) (urgency.Corpus, error) {
	data, path, err := s.read(KeyCorpusFile, s.corpus)
	if err != nil {
		return urgency.Corpus{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "scheduler: read corpus %s", path)
	}
	if data == nil {
		return urgency.DefaultCorpus()
	}
	c, err := urgency.ParseCorpus(data)
	if err != nil {
		return urgency.Corpus{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "scheduler: corpus %s", path)
	}
	logger.C(ctx).Info().Str("path", path).Int("examples", len(c.Examples())).Msg("corpus override loaded")
	return c, nil
}

// Roster returns the override roster when configured, else the embedded one
func (s *Seeds) Roster(ctx context.Context) (*roster.Directory, error) {
	data, path, err := s.read(KeyRosterFile, s.roster)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "scheduler: read roster %s", path)
	}
	if data == nil {
		return roster.Load()
	}
	d, err := roster.Parse(data)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "scheduler: roster %s", path)
	}
	logger.C(ctx).Info().Str("path", path).Int("technicians", d.Len()).Msg("roster override loaded")
	return d, nil
}
