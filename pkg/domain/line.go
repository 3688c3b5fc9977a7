package domain

import "gonum.org/v1/gonum/spatial/r3"

// Line samples points along a set of straight segments, each perturbed by
// uniform jitter on every axis. The source flags this domain as more of
// a proof-of-concept for seeding an initial tree than a production
// tissue domain, and this port keeps that character: segments are picked
// uniformly at random, not weighted by length.
type Line struct {
	Start, End []r3.Vec
	Deviation  float64

	min, max r3.Vec
	rng      *rng
}

// NewLine returns a Line domain over the given segments, seeded to 42.
// start and end must have equal, non-zero length.
func NewLine(start, end []r3.Vec, deviation float64) *Line {
	l := &Line{Start: start, End: end, Deviation: deviation}
	l.min, l.max = bounding(start, end, deviation)
	l.Seed(42)
	return l
}

func bounding(start, end []r3.Vec, pad float64) (min, max r3.Vec) {
	min = start[0]
	max = start[0]
	grow := func(p r3.Vec) {
		min = r3.Vec{X: minF(min.X, p.X), Y: minF(min.Y, p.Y), Z: minF(min.Z, p.Z)}
		max = r3.Vec{X: maxF(max.X, p.X), Y: maxF(max.Y, p.Y), Z: maxF(max.Z, p.Z)}
	}
	for _, p := range start {
		grow(p)
	}
	for _, p := range end {
		grow(p)
	}
	padVec := r3.Vec{X: pad, Y: pad, Z: pad}
	return r3.Sub(min, padVec), r3.Add(max, padVec)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (l *Line) Seed(seed uint32) {
	l.rng = newRNG(seed)
}

func (l *Line) Sample() r3.Vec {
	i := l.rng.r.IntN(len(l.Start))
	t := l.rng.r.Float64()
	p := r3.Add(l.Start[i], r3.Scale(t, r3.Sub(l.End[i], l.Start[i])))
	jitter := r3.Vec{
		X: l.rng.uniform(-l.Deviation, l.Deviation),
		Y: l.rng.uniform(-l.Deviation, l.Deviation),
		Z: l.rng.uniform(-l.Deviation, l.Deviation),
	}
	return r3.Add(p, jitter)
}

func (l *Line) MinExtents() r3.Vec { return l.min }
func (l *Line) MaxExtents() r3.Vec { return l.max }
