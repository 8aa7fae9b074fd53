// Package roster holds the fixed set of technicians available for dispatch.
// Technicians are immutable once built and the directory never changes after Load.
package roster

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var embeddedRoster []byte

const rosterVersion = 1

// DefaultSkill is assigned to technicians declared without skills
const DefaultSkill = "GENERAL"

// Technician is a dispatchable worker
type Technician struct {
	name      string
	home      string
	specialty string
	skills    map[string]struct{}
}

// NewTechnician builds an immutable technician. With no skills the technician is a GENERAL handyman
func NewTechnician(name, home, specialty string, skills ...string) Technician {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = struct{}{}
		}
	}
	if len(set) == 0 {
		set[DefaultSkill] = struct{}{}
	}
	return Technician{name: name, home: home, specialty: specialty, skills: set}
}

func (t Technician) Name() string         { return t.name }
func (t Technician) HomeLocation() string { return t.home }

// Specialty is the keyword looked for in a problem type
func (t Technician) Specialty() string { return t.specialty }

// Identity is "Name - HomeLocation", the string location requests are matched against
func (t Technician) Identity() string { return t.name + " - " + t.home }

// HasSkill reports exact (case sensitive) membership
func (t Technician) HasSkill(skill string) bool {
	_, ok := t.skills[skill]
	return ok
}

// Skills returns a sorted copy of the skill set
func (t Technician) Skills() []string {
	out := make([]string, 0, len(t.skills))
	for s := range t.skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

type rawTechnician struct {
	Name         string   `yaml:"name"`
	HomeLocation string   `yaml:"home_location"`
	Specialty    string   `yaml:"specialty"`
	Skills       []string `yaml:"skills"`
}

type rawRoster struct {
	Version     int             `yaml:"version"`
	Technicians []rawTechnician `yaml:"technicians"`
}

// Directory is an ordered, read only list of technicians
type Directory struct {
	techs []Technician
}

// New builds a directory keeping the given order
func New(techs ...Technician) *Directory {
	cp := make([]Technician, len(techs))
	copy(cp, techs)
	return &Directory{techs: cp}
}

// Load returns the embedded startup roster
func Load() (*Directory, error) { return Parse(embeddedRoster) }

// Parse decodes a YAML roster document
func Parse(data []byte) (*Directory, error) {
	var rr rawRoster
	if err := yaml.Unmarshal(data, &rr); err != nil {
		return nil, fmt.Errorf("roster: parse: %w", err)
	}
	if rr.Version != rosterVersion {
		return nil, fmt.Errorf("roster: unsupported version %d (want %d)", rr.Version, rosterVersion)
	}

	seen := make(map[string]struct{}, len(rr.Technicians))
	techs := make([]Technician, 0, len(rr.Technicians))
	for i, rt := range rr.Technicians {
		name := strings.TrimSpace(rt.Name)
		if name == "" {
			return nil, fmt.Errorf("roster: technician %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("roster: duplicate technician %q", name)
		}
		seen[name] = struct{}{}
		techs = append(techs, NewTechnician(name, strings.TrimSpace(rt.HomeLocation), strings.TrimSpace(rt.Specialty), rt.Skills...))
	}
	return &Directory{techs: techs}, nil
}

// ListAvailable returns every technician in declaration order. The slice is a copy
func (d *Directory) ListAvailable() []Technician {
	out := make([]Technician, len(d.techs))
	copy(out, d.techs)
	return out
}

// Len is the number of technicians
func (d *Directory) Len() int { return len(d.techs) }
