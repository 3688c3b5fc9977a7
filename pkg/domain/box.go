package domain

import "gonum.org/v1/gonum/spatial/r3"

// Box samples points uniformly from an axis-aligned box. The source has
// no standalone box domain, but domain_voxels degenerates to one when
// given a single voxel spanning [min,max]; a direct Box is simpler and
// more useful as a general-purpose bounded domain.
type Box struct {
	Min, Max r3.Vec

	rng *rng
}

// NewBox returns a Box domain over [min, max], seeded to 42.
func NewBox(min, max r3.Vec) *Box {
	b := &Box{Min: min, Max: max}
	b.Seed(42)
	return b
}

func (b *Box) Seed(seed uint32) {
	b.rng = newRNG(seed)
}

func (b *Box) Sample() r3.Vec {
	return r3.Vec{
		X: b.rng.uniform(b.Min.X, b.Max.X),
		Y: b.rng.uniform(b.Min.Y, b.Max.Y),
		Z: b.rng.uniform(b.Min.Z, b.Max.Z),
	}
}

func (b *Box) MinExtents() r3.Vec { return b.Min }
func (b *Box) MaxExtents() r3.Vec { return b.Max }

func init() {
	Register("box", func() Domain {
		return NewBox(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1})
	})
}
