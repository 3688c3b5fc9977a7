package domain

import "gonum.org/v1/gonum/spatial/r3"

// Voxel samples points uniformly within a fixed-size box around each of
// a set of voxel centers, picking a voxel uniformly at random per
// sample. It is the Go analog of the source's domain_voxels constructed
// directly from voxel centers; the boolean-grid constructor from the
// source is not carried over since callers can compute centers
// themselves more directly in Go.
type Voxel struct {
	Centers []r3.Vec
	Size    r3.Vec

	min, max r3.Vec
	rng      *rng
}

// NewVoxel returns a Voxel domain over the given voxel centers, each of
// extent size, seeded to 42.
func NewVoxel(centers []r3.Vec, size r3.Vec) *Voxel {
	v := &Voxel{Centers: centers, Size: size}
	half := r3.Scale(0.5, size)
	min, max := centers[0], centers[0]
	for _, c := range centers {
		min = r3.Vec{X: minF(min.X, c.X), Y: minF(min.Y, c.Y), Z: minF(min.Z, c.Z)}
		max = r3.Vec{X: maxF(max.X, c.X), Y: maxF(max.Y, c.Y), Z: maxF(max.Z, c.Z)}
	}
	v.min = r3.Sub(min, half)
	v.max = r3.Add(max, half)
	v.Seed(42)
	return v
}

func (v *Voxel) Seed(seed uint32) {
	v.rng = newRNG(seed)
}

func (v *Voxel) Sample() r3.Vec {
	c := v.Centers[v.rng.r.IntN(len(v.Centers))]
	return r3.Vec{
		X: v.rng.uniform(c.X-v.Size.X/2, c.X+v.Size.X/2),
		Y: v.rng.uniform(c.Y-v.Size.Y/2, c.Y+v.Size.Y/2),
		Z: v.rng.uniform(c.Z-v.Size.Z/2, c.Z+v.Size.Z/2),
	}
}

func (v *Voxel) MinExtents() r3.Vec { return v.min }
func (v *Voxel) MaxExtents() r3.Vec { return v.max }
