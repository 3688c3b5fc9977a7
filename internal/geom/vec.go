// Package geom collects the small amount of vector math the growth engine
// needs on top of gonum's r3.Vec: rotation about an axis and the angle
// between two directions.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged rather than producing NaNs.
func Unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return v
	}
	return r3.Scale(1/n, v)
}

// AngleDeg returns the angle between a and b in degrees, assuming both are
// already unit length. The dot product is clipped to [-1,1] to tolerate
// floating point drift before acos.
func AngleDeg(a, b r3.Vec) float64 {
	d := clip(r3.Dot(a, b), -1, 1)
	return radToDeg(math.Acos(d))
}

// Rotate rotates v by angleDeg degrees about the unit axis, using the
// Rodrigues rotation formula.
func Rotate(v r3.Vec, angleDeg float64, axis r3.Vec) r3.Vec {
	theta := degToRad(angleDeg)
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	term1 := r3.Scale(cosT, v)
	term2 := r3.Scale(sinT, r3.Cross(axis, v))
	term3 := r3.Scale(r3.Dot(axis, v)*(1-cosT), axis)

	return r3.Add(term1, r3.Add(term2, term3))
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
func degToRad(d float64) float64 { return d * math.Pi / 180 }
