package modkit

import (
	"interventions/internal/platform/config"
	"interventions/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log, or a root child named component when Log is unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(component)
}
