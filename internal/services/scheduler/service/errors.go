package service

import perr "interventions/internal/platform/errors"

var (
	errEmptyModel  = perr.Unavailablef("scheduler: urgency model has no vocabulary")
	errEmptyRoster = perr.Unavailablef("scheduler: no technicians on the roster")
)
