package modkit

import (
	"interventions/internal/modkit/httpkit"
	pstrings "interventions/internal/platform/strings"
)

// Built is the resolved name and prefix of a module
type Built struct {
	Name   string
	Prefix string
}

// Build starts from name and prefix and applies opts in order
func Build(name, prefix string, opts ...Option) Built {
	b := Built{Name: name, Prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount registers own under the module prefix. An empty prefix mounts in a group on r
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	if b.Prefix == "" || b.Prefix == "/" {
		r.Group(own)
		return
	}
	httpkit.MountUnder(r, pstrings.MustPrefix(b.Prefix), nil, own)
}
