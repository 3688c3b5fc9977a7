// Package law implements Murray's law as pure, total functions over vessel
// radii: the parent radius a bifurcation should take given its two children,
// the angles those children branch off at, and the best-fit line through a
// set of points used to orient a new bifurcation.
//
// Every function here is side-effect free and safe to call with arbitrary
// floating point input — numerical edge cases (acos arguments drifting
// outside [-1,1]) are clipped rather than signaled, per the growth engine's
// error-handling design: Murray-law evaluation never fails.
package law

import "math"

// ParentRadius returns the radius a parent vessel must have so that Murray's
// law r_p^gamma = r_l^gamma + r_r^gamma holds for children of radius rl, rr.
// gamma is the bifurcation exponent and must be > 0.
func ParentRadius(rl, rr, gamma float64) float64 {
	return math.Pow(math.Pow(rl, gamma)+math.Pow(rr, gamma), 1/gamma)
}

// Angles returns the pair (left, right) of bifurcation angles in degrees
// that minimize vessel volume for a parent of radius rp branching into
// children of radius rl and rr. The left angle is reported negative, the
// right positive, so that a caller can rotate a reference direction by the
// matching sign without a separate convention.
func Angles(rp, rl, rr float64) (left, right float64) {
	rp2, rp4 := rp*rp, rp*rp*rp*rp
	rl4 := rl * rl * rl * rl
	rr4 := rr * rr * rr * rr

	leftCos := clip((rp4+rl4-rr4)/(2*rp2*rl*rl), -1, 1)
	rightCos := clip((rp4-rl4+rr4)/(2*rp2*rr*rr), -1, 1)

	left = -radToDeg(math.Acos(leftCos))
	right = radToDeg(math.Acos(rightCos))
	return left, right
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
