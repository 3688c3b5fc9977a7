package domain

import "gonum.org/v1/gonum/spatial/r3"

// Sphere samples points uniformly from a solid ball. It is the Go analog
// of the source's domain_sphere (the source's domain_circle, a 2D
// variant, has no counterpart here since the growth engine is 3D only).
type Sphere struct {
	Center r3.Vec
	Radius float64

	rng *rng
}

// NewSphere returns a Sphere domain centered at center with the given
// radius, seeded to 42 to match the source's default.
func NewSphere(center r3.Vec, radius float64) *Sphere {
	s := &Sphere{Center: center, Radius: radius}
	s.Seed(42)
	return s
}

func (s *Sphere) Seed(seed uint32) {
	s.rng = newRNG(seed)
}

func (s *Sphere) Sample() r3.Vec {
	return r3.Add(s.Center, s.rng.pointInBall(s.Radius))
}

func (s *Sphere) MinExtents() r3.Vec {
	return r3.Sub(s.Center, r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius})
}

func (s *Sphere) MaxExtents() r3.Vec {
	return r3.Add(s.Center, r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius})
}

func init() {
	Register("sphere", func() Domain { return NewSphere(r3.Vec{}, 1) })
}
