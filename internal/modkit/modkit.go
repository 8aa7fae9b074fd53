// Package modkit wires API modules: shared deps, name and prefix options, and mounting
// every module under one router while publishing its ports
package modkit

import (
	"interventions/internal/modkit/httpkit"
	"interventions/internal/modkit/module"
)

// Module is what the API mounts. See module.Module
type Module = module.Module

// Option adjusts a module's Built before it mounts
type Option func(*Built)

// WithName overrides the registry and log name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix overrides the route prefix under /api/v1
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// MountAll publishes each module's ports under its name, then mounts its routes on r.
// Ports are registered first so handlers can look up modules mounted after them
func MountAll(r httpkit.Router, mods ...Module) {
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
	}
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
