package domain

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// rng is a thin convenience wrapper around math/rand/v2 for deterministic,
// reseedable sampling. The generator is PCG: unlike the source's
// platform-dependent std::mt19937, PCG's output stream is the same on
// every platform Go runs on, so a seeded domain reproduces identical
// attraction sequences across machines.
type rng struct {
	r *rand.Rand
}

func newRNG(seed uint32) *rng {
	return &rng{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func (g *rng) reseed(seed uint32) {
	g.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// uniform returns a float64 uniformly distributed in [lo, hi).
func (g *rng) uniform(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// normal returns a float64 drawn from the standard normal distribution
// via the Box-Muller transform.
func (g *rng) normal() float64 {
	u1 := g.r.Float64()
	for u1 == 0 {
		u1 = g.r.Float64()
	}
	u2 := g.r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// unitSphereDirection returns a uniformly random unit vector.
func (g *rng) unitSphereDirection() r3.Vec {
	v := r3.Vec{X: g.normal(), Y: g.normal(), Z: g.normal()}
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{X: 0, Y: 0, Z: 1}
	}
	return r3.Scale(1/n, v)
}

// pointInBall returns a point uniformly distributed in the ball of the
// given radius centered at the origin.
func (g *rng) pointInBall(radius float64) r3.Vec {
	u := math.Cbrt(g.r.Float64()) * radius
	return r3.Scale(u, g.unitSphereDirection())
}
