// Package domain provides point-sampling sources for the growth engine.
// A Domain is treated by the synthesizer as an opaque, borrowed point
// producer: it is never mutated by the caller, and sampling need not
// respect any geometric boundary beyond the reported extents, which are
// authoritative only for spatial-index construction.
package domain

import "gonum.org/v1/gonum/spatial/r3"

// Domain is an external point producer with deterministic seeding and
// axis-aligned bounds.
type Domain interface {
	Seed(seed uint32)
	Sample() r3.Vec
	MinExtents() r3.Vec
	MaxExtents() r3.Vec
}

// Samples fills points with n values drawn from d.Sample.
func Samples(d Domain, n int) []r3.Vec {
	points := make([]r3.Vec, n)
	for i := range points {
		points[i] = d.Sample()
	}
	return points
}

// Factory builds a Domain instance with its default parameters and seed.
// Registered factories let command-line tools select a domain by name.
type Factory func() Domain

var registry = map[string]Factory{}

// Register makes a domain factory available under name. Intended to be
// called from package init.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// New looks up a registered factory by name and constructs a Domain. It
// reports false if no factory is registered under that name.
func New(name string) (Domain, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Factories returns the registered domain factory names.
func Factories() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
