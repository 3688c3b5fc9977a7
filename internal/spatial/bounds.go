package spatial

import "gonum.org/v1/gonum/spatial/r3"

type bounds struct {
	min, max r3.Vec
}

func (b bounds) contains(p r3.Vec) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// intersectsSphere reports whether the box and the sphere of the given
// center and radius overlap, using the exact squared distance from the
// center to the closest point of the box.
func (b bounds) intersectsSphere(center r3.Vec, radius float64) bool {
	d := 0.0
	d += axisGap(center.X, b.min.X, b.max.X)
	d += axisGap(center.Y, b.min.Y, b.max.Y)
	d += axisGap(center.Z, b.min.Z, b.max.Z)
	return d <= radius*radius
}

func axisGap(c, lo, hi float64) float64 {
	switch {
	case c < lo:
		return (lo - c) * (lo - c)
	case c > hi:
		return (c - hi) * (c - hi)
	default:
		return 0
	}
}

func (b bounds) mid() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.min, b.max))
}

// octant returns the bounds of the i-th (0..7) octant of b, splitting each
// axis at the midpoint; bit 0 of i selects the X half, bit 1 the Y half,
// bit 2 the Z half.
func (b bounds) octant(i int) bounds {
	mid := b.mid()
	min, max := b.min, b.max
	if i&1 != 0 {
		min.X = mid.X
	} else {
		max.X = mid.X
	}
	if i&2 != 0 {
		min.Y = mid.Y
	} else {
		max.Y = mid.Y
	}
	if i&4 != 0 {
		min.Z = mid.Z
	} else {
		max.Z = mid.Z
	}
	return bounds{min: min, max: max}
}

// octantIndex returns which of b's 8 octants p falls in.
func (b bounds) octantIndex(p r3.Vec) int {
	mid := b.mid()
	idx := 0
	if p.X >= mid.X {
		idx |= 1
	}
	if p.Y >= mid.Y {
		idx |= 2
	}
	if p.Z >= mid.Z {
		idx |= 4
	}
	return idx
}
